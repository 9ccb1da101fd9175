package repositories

import (
	"context"
	"net/url"

	"autopage/internal/infra"
	"autopage/internal/models/store_models"
)

type SectionRepository interface {
	CreateForPage(ctx context.Context, pageRef string, sections []store_models.Section) ([]store_models.Section, error)
	ListByPage(ctx context.Context, pageRef string) ([]store_models.Section, error)
	// FindByRef also resolves the owning page so callers can check scope.
	FindByRef(ctx context.Context, ref string) (*store_models.Section, string, error)
	Update(ctx context.Context, ref string, data map[string]interface{}) (*store_models.Section, error)
	DeleteByPage(ctx context.Context, pageRef string) error
}

type sectionRepository struct {
	store *infra.StoreClient
}

func NewSectionRepository(store *infra.StoreClient) SectionRepository {
	return &sectionRepository{store: store}
}

func (s *sectionRepository) CreateForPage(ctx context.Context, pageRef string, sections []store_models.Section) ([]store_models.Section, error) {
	created := make([]store_models.Section, 0, len(sections))
	for _, section := range sections {
		rec, err := s.store.Create(ctx, "sections", map[string]interface{}{
			"type":    section.Type,
			"order":   section.Order,
			"enabled": section.Enabled,
			"data":    section.Data,
			"page":    pageRef,
		})
		if err != nil {
			return created, err
		}
		created = append(created, *sectionFromRecord(rec))
	}
	return created, nil
}

func (s *sectionRepository) ListByPage(ctx context.Context, pageRef string) ([]store_models.Section, error) {
	params := url.Values{}
	params.Set("filters[page][documentId][$eq]", pageRef)
	params.Set("sort", "order:asc")
	params.Set("pagination[pageSize]", listPageSize)
	records, err := s.store.List(ctx, "sections", params)
	if err != nil {
		return nil, err
	}
	sections := make([]store_models.Section, 0, len(records))
	for i := range records {
		sections = append(sections, *sectionFromRecord(&records[i]))
	}
	return sections, nil
}

func (s *sectionRepository) FindByRef(ctx context.Context, ref string) (*store_models.Section, string, error) {
	params := url.Values{}
	params.Set("populate", "page")
	rec, err := s.store.Get(ctx, "sections", ref, params)
	if err != nil {
		return nil, "", err
	}
	return sectionFromRecord(rec), rec.RelationID("page"), nil
}

func (s *sectionRepository) Update(ctx context.Context, ref string, data map[string]interface{}) (*store_models.Section, error) {
	rec, err := s.store.Update(ctx, "sections", ref, data)
	if err != nil {
		return nil, err
	}
	return sectionFromRecord(rec), nil
}

func (s *sectionRepository) DeleteByPage(ctx context.Context, pageRef string) error {
	sections, err := s.ListByPage(ctx, pageRef)
	if err != nil {
		return err
	}
	for _, section := range sections {
		if err := s.store.Delete(ctx, "sections", section.ID); err != nil {
			return err
		}
	}
	return nil
}

func sectionFromRecord(rec *infra.Record) *store_models.Section {
	return &store_models.Section{
		ID:      rec.Ref(),
		Type:    store_models.SectionType(rec.Str("type")),
		Order:   rec.Int("order"),
		Enabled: rec.Bool("enabled"),
		Data:    rec.Map("data"),
	}
}
