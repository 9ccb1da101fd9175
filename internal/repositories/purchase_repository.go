package repositories

import (
	"context"
	"net/url"

	"autopage/internal/infra"
	"autopage/internal/models/store_models"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *store_models.Purchase) (*store_models.Purchase, error)
	FindByRef(ctx context.Context, ref string) (*store_models.Purchase, error)
	ListByPage(ctx context.Context, pageRef string) ([]store_models.Purchase, error)
	Update(ctx context.Context, ref string, data map[string]interface{}) (*store_models.Purchase, error)
}

type purchaseRepository struct {
	store *infra.StoreClient
}

func NewPurchaseRepository(store *infra.StoreClient) PurchaseRepository {
	return &purchaseRepository{store: store}
}

func (p *purchaseRepository) Create(ctx context.Context, purchase *store_models.Purchase) (*store_models.Purchase, error) {
	rec, err := p.store.Create(ctx, "purchases", map[string]interface{}{
		"page":            purchase.PageID,
		"total":           purchase.Total,
		"paymentMethod":   purchase.PaymentMethod,
		"purchaseStatus":  purchase.Status,
		"customerName":    purchase.CustomerName,
		"customerPhone":   purchase.CustomerPhone,
		"customerEmail":   purchase.CustomerEmail,
		"customerAddress": purchase.CustomerAddress,
		"shipping":        purchase.Shipping,
		"lineItems":       purchase.LineItems,
	})
	if err != nil {
		return nil, err
	}
	return purchaseFromRecord(rec), nil
}

func (p *purchaseRepository) FindByRef(ctx context.Context, ref string) (*store_models.Purchase, error) {
	params := url.Values{}
	params.Set("populate", "page")
	rec, err := p.store.Get(ctx, "purchases", ref, params)
	if err != nil {
		return nil, err
	}
	return purchaseFromRecord(rec), nil
}

func (p *purchaseRepository) ListByPage(ctx context.Context, pageRef string) ([]store_models.Purchase, error) {
	params := url.Values{}
	params.Set("filters[page][documentId][$eq]", pageRef)
	params.Set("sort", "createdAt:desc")
	params.Set("pagination[pageSize]", listPageSize)
	records, err := p.store.List(ctx, "purchases", params)
	if err != nil {
		return nil, err
	}
	purchases := make([]store_models.Purchase, 0, len(records))
	for i := range records {
		purchases = append(purchases, *purchaseFromRecord(&records[i]))
	}
	return purchases, nil
}

func (p *purchaseRepository) Update(ctx context.Context, ref string, data map[string]interface{}) (*store_models.Purchase, error) {
	rec, err := p.store.Update(ctx, "purchases", ref, data)
	if err != nil {
		return nil, err
	}
	return purchaseFromRecord(rec), nil
}

func purchaseFromRecord(rec *infra.Record) *store_models.Purchase {
	purchase := &store_models.Purchase{
		ID:              rec.Ref(),
		PageID:          rec.RelationID("page"),
		Total:           rec.Float("total"),
		PaymentMethod:   rec.Str("paymentMethod"),
		Status:          store_models.PurchaseStatus(rec.Str("purchaseStatus")),
		CustomerName:    rec.Str("customerName"),
		CustomerPhone:   rec.Str("customerPhone"),
		CustomerEmail:   rec.Str("customerEmail"),
		CustomerAddress: rec.Str("customerAddress"),
		Shipping:        rec.Bool("shipping"),
		CreatedAt:       rec.Time("createdAt"),
		PickedAt:        rec.Time("pickedAt"),
		DeliveredAt:     rec.Time("deliveredAt"),
	}
	for _, item := range rec.Slice("lineItems") {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		purchase.LineItems = append(purchase.LineItems, store_models.LineItem{
			ProductID: strField(m, "productId"),
			Name:      strField(m, "name"),
			Quantity:  intField(m, "quantity"),
			UnitPrice: floatField(m, "unitPrice"),
		})
	}
	return purchase
}

func strField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func floatField(m map[string]interface{}, key string) float64 {
	f, _ := m[key].(float64)
	return f
}

func intField(m map[string]interface{}, key string) int {
	return int(floatField(m, key))
}
