package repositories

import (
	"context"
	"net/url"

	"autopage/internal/infra"
	"autopage/internal/models/store_models"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *store_models.Lead) (*store_models.Lead, error)
	FindByRef(ctx context.Context, ref string) (*store_models.Lead, error)
	ListByPage(ctx context.Context, pageRef string) ([]store_models.Lead, error)
	Update(ctx context.Context, ref string, data map[string]interface{}) (*store_models.Lead, error)
}

type leadRepository struct {
	store *infra.StoreClient
}

func NewLeadRepository(store *infra.StoreClient) LeadRepository {
	return &leadRepository{store: store}
}

func (l *leadRepository) Create(ctx context.Context, lead *store_models.Lead) (*store_models.Lead, error) {
	data := map[string]interface{}{
		"page":              lead.PageID,
		"name":              lead.Name,
		"phone":             lead.Phone,
		"email":             lead.Email,
		"message":           lead.Message,
		"appointmentStatus": lead.AppointmentStatus,
	}
	if !lead.AppointmentDate.IsZero() {
		data["appointmentDate"] = lead.AppointmentDate
	}
	rec, err := l.store.Create(ctx, "leads", data)
	if err != nil {
		return nil, err
	}
	return leadFromRecord(rec), nil
}

func (l *leadRepository) FindByRef(ctx context.Context, ref string) (*store_models.Lead, error) {
	params := url.Values{}
	params.Set("populate", "page")
	rec, err := l.store.Get(ctx, "leads", ref, params)
	if err != nil {
		return nil, err
	}
	return leadFromRecord(rec), nil
}

func (l *leadRepository) ListByPage(ctx context.Context, pageRef string) ([]store_models.Lead, error) {
	params := url.Values{}
	params.Set("filters[page][documentId][$eq]", pageRef)
	params.Set("sort", "createdAt:desc")
	params.Set("pagination[pageSize]", listPageSize)
	records, err := l.store.List(ctx, "leads", params)
	if err != nil {
		return nil, err
	}
	leads := make([]store_models.Lead, 0, len(records))
	for i := range records {
		leads = append(leads, *leadFromRecord(&records[i]))
	}
	return leads, nil
}

func (l *leadRepository) Update(ctx context.Context, ref string, data map[string]interface{}) (*store_models.Lead, error) {
	rec, err := l.store.Update(ctx, "leads", ref, data)
	if err != nil {
		return nil, err
	}
	return leadFromRecord(rec), nil
}

func leadFromRecord(rec *infra.Record) *store_models.Lead {
	return &store_models.Lead{
		ID:                rec.Ref(),
		PageID:            rec.RelationID("page"),
		Name:              rec.Str("name"),
		Phone:             rec.Str("phone"),
		Email:             rec.Str("email"),
		Message:           rec.Str("message"),
		AppointmentDate:   rec.Time("appointmentDate"),
		AppointmentStatus: store_models.LeadStatus(rec.Str("appointmentStatus")),
		CreatedAt:         rec.Time("createdAt"),
	}
}
