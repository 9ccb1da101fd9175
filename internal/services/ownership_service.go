package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"autopage/internal/models/request_models"
	"autopage/internal/models/response_models"
	"autopage/internal/models/store_models"
	"autopage/internal/repositories"
	"autopage/pkg/utils"
)

type OwnershipService interface {
	// ListOwnedPages reconciles both ownership channels into one owned set.
	ListOwnedPages(ctx context.Context, ownerRef, identityKey string) ([]response_models.OwnedPage, error)
	AttachOwner(ctx context.Context, pageRef string, req *request_models.AttachOwnerRequest) error
	CreateOrFind(ctx context.Context, identityKey, displayName, email string) (*store_models.Owner, error)
}

type ownershipService struct {
	pages  repositories.PageRepository
	owners repositories.OwnerRepository
	logger *zap.Logger
}

func NewOwnershipService(
	pages repositories.PageRepository,
	owners repositories.OwnerRepository,
	logger *zap.Logger,
) OwnershipService {
	return &ownershipService{
		pages:  pages,
		owners: owners,
		logger: logger,
	}
}

// ListOwnedPages queries the relation channel and the key channel
// concurrently and merges the results. A page found on both channels is
// reported once. A key-matched page whose relation points at a different
// owner is a conflict: the relation wins, the page is excluded and logged.
func (o *ownershipService) ListOwnedPages(ctx context.Context, ownerRef, identityKey string) ([]response_models.OwnedPage, error) {
	if ownerRef == "" && identityKey == "" {
		return nil, fmt.Errorf("%w: no owner identity", utils.ErrInvalidScope)
	}

	var byRelation, byKey []store_models.Page
	g, gctx := errgroup.WithContext(ctx)
	if ownerRef != "" {
		g.Go(func() error {
			var err error
			byRelation, err = o.pages.ListByOwnerRef(gctx, ownerRef)
			return err
		})
	}
	if identityKey != "" {
		g.Go(func() error {
			var err error
			byKey, err = o.pages.ListByOwnerKey(gctx, identityKey)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := map[string]response_models.OwnedPage{}
	for _, page := range byRelation {
		merged[page.Ref()] = toOwnedPage(&page, response_models.ProvenanceRelation)
	}
	for _, page := range byKey {
		ref := page.Ref()
		if _, ok := merged[ref]; ok {
			owned := merged[ref]
			owned.Provenance = response_models.ProvenanceBoth
			merged[ref] = owned
			continue
		}
		if page.OwnerRef != "" && page.OwnerRef != ownerRef {
			o.logger.Warn("ownership conflict, relation wins",
				zap.String("page", ref),
				zap.String("relationOwner", page.OwnerRef),
				zap.String("identityKey", identityKey))
			continue
		}
		merged[ref] = toOwnedPage(&page, response_models.ProvenanceKey)
	}

	pages := make([]response_models.OwnedPage, 0, len(merged))
	for _, owned := range merged {
		pages = append(pages, owned)
	}
	sort.Slice(pages, func(i, j int) bool {
		if pages[i].CreatedAt.Equal(pages[j].CreatedAt) {
			return pages[i].ID < pages[j].ID
		}
		return pages[i].CreatedAt.After(pages[j].CreatedAt)
	})
	return pages, nil
}

// AttachOwner claims a page: both ownership channels are written so the
// page is reachable by relation and by key from now on.
func (o *ownershipService) AttachOwner(ctx context.Context, pageRef string, req *request_models.AttachOwnerRequest) error {
	if req.OwnerID == "" && req.IdentityKey == "" {
		return fmt.Errorf("%w: ownerId or identityKey required", utils.ErrValidation)
	}

	ownerRef := req.OwnerID
	identityKey := req.IdentityKey
	if ownerRef == "" {
		owner, err := o.CreateOrFind(ctx, identityKey, "", "")
		if err != nil {
			return err
		}
		ownerRef = owner.ID
	} else {
		owner, err := o.owners.FindByRef(ctx, ownerRef)
		if err != nil {
			if errors.Is(err, utils.ErrRecordNotFound) {
				return utils.ErrOwnerNotFound
			}
			return err
		}
		if identityKey == "" {
			identityKey = owner.IdentityKey
		}
	}

	_, err := o.pages.Update(ctx, pageRef, map[string]interface{}{
		"owner":    ownerRef,
		"ownerKey": identityKey,
	})
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return utils.ErrPageNotFound
		}
		return err
	}

	o.logger.Info("owner attached",
		zap.String("page", pageRef),
		zap.String("owner", ownerRef))
	return nil
}

// CreateOrFind resolves an owner by identity key, creating the record on
// first sight.
func (o *ownershipService) CreateOrFind(ctx context.Context, identityKey, displayName, email string) (*store_models.Owner, error) {
	if identityKey == "" {
		return nil, fmt.Errorf("%w: identityKey required", utils.ErrValidation)
	}
	owner, err := o.owners.FindByIdentityKey(ctx, identityKey)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		return owner, nil
	}
	return o.owners.Create(ctx, &store_models.Owner{
		IdentityKey:        identityKey,
		DisplayName:        displayName,
		Email:              email,
		SubscriptionStatus: store_models.SubStatusNone,
	})
}

func toOwnedPage(page *store_models.Page, provenance response_models.Provenance) response_models.OwnedPage {
	return response_models.OwnedPage{
		ID:         page.ID,
		DocumentID: page.DocumentID,
		Title:      page.Title,
		Slug:       page.Slug,
		PageType:   page.PageType,
		IsActive:   page.IsActive,
		Provenance: provenance,
		CreatedAt:  page.CreatedAt,
		UpdatedAt:  page.UpdatedAt,
	}
}
