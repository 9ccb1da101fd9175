package repositories

import (
	"context"
	"encoding/json"
	"net/url"

	"autopage/internal/infra"
	"autopage/internal/models/store_models"
)

// listPageSize caps a single list request. Collections here stay well under
// it per page/owner; anything larger belongs in a paginated endpoint.
const listPageSize = "500"

type PageRepository interface {
	Create(ctx context.Context, data map[string]interface{}) (*store_models.Page, error)
	FindByRef(ctx context.Context, ref string) (*store_models.Page, error)
	FindBySlug(ctx context.Context, slug string) (*store_models.Page, error)
	ListByOwnerRef(ctx context.Context, ownerRef string) ([]store_models.Page, error)
	ListByOwnerKey(ctx context.Context, identityKey string) ([]store_models.Page, error)
	Update(ctx context.Context, ref string, data map[string]interface{}) (*store_models.Page, error)
	Delete(ctx context.Context, ref string) error
}

type pageRepository struct {
	store *infra.StoreClient
}

func NewPageRepository(store *infra.StoreClient) PageRepository {
	return &pageRepository{store: store}
}

func (p *pageRepository) Create(ctx context.Context, data map[string]interface{}) (*store_models.Page, error) {
	rec, err := p.store.Create(ctx, "pages", data)
	if err != nil {
		return nil, err
	}
	return pageFromRecord(rec), nil
}

func (p *pageRepository) FindByRef(ctx context.Context, ref string) (*store_models.Page, error) {
	params := url.Values{}
	params.Set("populate", "*")
	rec, err := p.store.Get(ctx, "pages", ref, params)
	if err != nil {
		return nil, err
	}
	return pageFromRecord(rec), nil
}

func (p *pageRepository) FindBySlug(ctx context.Context, slug string) (*store_models.Page, error) {
	params := url.Values{}
	params.Set("filters[slug][$eq]", slug)
	params.Set("populate", "*")
	records, err := p.store.List(ctx, "pages", params)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return pageFromRecord(&records[0]), nil
}

func (p *pageRepository) ListByOwnerRef(ctx context.Context, ownerRef string) ([]store_models.Page, error) {
	params := url.Values{}
	params.Set("filters[owner][documentId][$eq]", ownerRef)
	return p.list(ctx, params)
}

func (p *pageRepository) ListByOwnerKey(ctx context.Context, identityKey string) ([]store_models.Page, error) {
	params := url.Values{}
	params.Set("filters[ownerKey][$eq]", identityKey)
	return p.list(ctx, params)
}

func (p *pageRepository) list(ctx context.Context, params url.Values) ([]store_models.Page, error) {
	params.Set("sort", "createdAt:desc")
	params.Set("pagination[pageSize]", listPageSize)
	params.Set("populate", "owner")
	records, err := p.store.List(ctx, "pages", params)
	if err != nil {
		return nil, err
	}
	pages := make([]store_models.Page, 0, len(records))
	for i := range records {
		pages = append(pages, *pageFromRecord(&records[i]))
	}
	return pages, nil
}

func (p *pageRepository) Update(ctx context.Context, ref string, data map[string]interface{}) (*store_models.Page, error) {
	rec, err := p.store.Update(ctx, "pages", ref, data)
	if err != nil {
		return nil, err
	}
	return pageFromRecord(rec), nil
}

func (p *pageRepository) Delete(ctx context.Context, ref string) error {
	return p.store.Delete(ctx, "pages", ref)
}

func pageFromRecord(rec *infra.Record) *store_models.Page {
	page := &store_models.Page{
		ID:                 rec.ID,
		DocumentID:         rec.DocumentID,
		Title:              rec.Str("title"),
		Slug:               rec.Str("slug"),
		PageType:           store_models.PageType(rec.Str("pageType")),
		OwnerRef:           rec.RelationID("owner"),
		OwnerKey:           rec.Str("ownerKey"),
		Description:        rec.Str("description"),
		Phone:              rec.Str("phone"),
		Email:              rec.Str("email"),
		City:               rec.Str("city"),
		Address:            rec.Str("address"),
		IsActive:           rec.Bool("isActive"),
		SubscriptionStatus: store_models.SubscriptionStatus(rec.Str("subscriptionStatus")),
		Metadata:           rec.Map("metadata"),
		CreatedAt:          rec.Time("createdAt"),
		UpdatedAt:          rec.Time("updatedAt"),
	}
	for _, sec := range rec.RelationRecords("sections") {
		page.Sections = append(page.Sections, *sectionFromRecord(&sec))
	}
	if raw := rec.Slice("products"); raw != nil {
		if b, err := json.Marshal(raw); err == nil {
			_ = json.Unmarshal(b, &page.Products)
		}
	}
	return page
}
