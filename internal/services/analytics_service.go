package services

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"autopage/internal/models/response_models"
	"autopage/internal/models/store_models"
	"autopage/internal/repositories"
	"autopage/pkg/utils"
)

const (
	pageRecentLimit  = 20
	ownerRecentLimit = 50
	topProductsLimit = 10
	// analyticsFanOut bounds concurrent per-page store fetches in the
	// owner-wide report.
	analyticsFanOut = 5
)

type AnalyticsService interface {
	PageAnalytics(ctx context.Context, pageRef, ownerRef, identityKey string) (*response_models.AnalyticsReport, error)
	OwnerAnalytics(ctx context.Context, ownerRef, identityKey string) (*response_models.AnalyticsReport, error)
}

type analyticsService struct {
	pages     repositories.PageRepository
	purchases repositories.PurchaseRepository
	leads     repositories.LeadRepository
	ownership OwnershipService
	logger    *zap.Logger
}

func NewAnalyticsService(
	pages repositories.PageRepository,
	purchases repositories.PurchaseRepository,
	leads repositories.LeadRepository,
	ownership OwnershipService,
	logger *zap.Logger,
) AnalyticsService {
	return &analyticsService{
		pages:     pages,
		purchases: purchases,
		leads:     leads,
		ownership: ownership,
		logger:    logger,
	}
}

// PageAnalytics builds the rollup for one page. Purchases and leads are
// fetched concurrently; the report fails if either fetch fails.
func (a *analyticsService) PageAnalytics(ctx context.Context, pageRef, ownerRef, identityKey string) (*response_models.AnalyticsReport, error) {
	page, err := a.pages.FindByRef(ctx, pageRef)
	if err != nil {
		return nil, err
	}
	if !ownedBy(page, ownerRef, identityKey) {
		return nil, utils.ErrInvalidScope
	}

	var purchases []store_models.Purchase
	var leads []store_models.Lead
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		purchases, err = a.purchases.ListByPage(gctx, page.Ref())
		return err
	})
	g.Go(func() error {
		var err error
		leads, err = a.leads.ListByPage(gctx, page.Ref())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := newAggregator()
	agg.addPage(page, purchases, leads)

	report := agg.report(pageRecentLimit)
	report.PageID = page.Ref()
	report.PageBreakdown = nil
	return report, nil
}

// OwnerAnalytics builds the rollup across every page the owner holds, on
// either ownership channel. Per-page fetches run concurrently with bounded
// parallelism; a failed page does not sink the report, it is listed in
// FailedPages and the result is marked partial.
func (a *analyticsService) OwnerAnalytics(ctx context.Context, ownerRef, identityKey string) (*response_models.AnalyticsReport, error) {
	owned, err := a.ownership.ListOwnedPages(ctx, ownerRef, identityKey)
	if err != nil {
		return nil, err
	}

	type pageData struct {
		page      *store_models.Page
		purchases []store_models.Purchase
		leads     []store_models.Lead
	}

	var mu sync.Mutex
	results := make(map[string]pageData, len(owned))
	var failed []string

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyticsFanOut)
	for _, ownedPage := range owned {
		ref := ownedPage.DocumentID
		if ref == "" {
			ref = ownedPage.ID
		}
		title, slug := ownedPage.Title, ownedPage.Slug
		g.Go(func() error {
			var purchases []store_models.Purchase
			var leads []store_models.Lead
			pg, pctx := errgroup.WithContext(gctx)
			pg.Go(func() error {
				var err error
				purchases, err = a.purchases.ListByPage(pctx, ref)
				return err
			})
			pg.Go(func() error {
				var err error
				leads, err = a.leads.ListByPage(pctx, ref)
				return err
			})
			err := pg.Wait()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				a.logger.Warn("skipping page in owner report",
					zap.String("page", ref), zap.Error(err))
				failed = append(failed, ref)
				return nil
			}
			results[ref] = pageData{
				page: &store_models.Page{
					DocumentID: ref,
					Title:      title,
					Slug:       slug,
				},
				purchases: purchases,
				leads:     leads,
			}
			return nil
		})
	}
	_ = g.Wait()

	// Aggregate in the reconciler's page order so first-seen ranking does
	// not depend on fetch completion order.
	agg := newAggregator()
	for _, ownedPage := range owned {
		ref := ownedPage.DocumentID
		if ref == "" {
			ref = ownedPage.ID
		}
		if r, ok := results[ref]; ok {
			agg.addPage(r.page, r.purchases, r.leads)
		}
	}

	report := agg.report(ownerRecentLimit)
	report.OwnerID = ownerRef
	report.TotalPages = len(owned)
	if len(failed) > 0 {
		sort.Strings(failed)
		report.Partial = true
		report.FailedPages = failed
	}
	return report, nil
}
