package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"autopage/internal/models/request_models"
	"autopage/internal/models/store_models"
	"autopage/internal/repositories"
	"autopage/pkg/utils"
)

type TransactionService interface {
	CreatePurchase(ctx context.Context, req *request_models.CreatePurchaseRequest) (*store_models.Purchase, error)
	UpdatePurchaseStatus(ctx context.Context, ref, ownerRef, identityKey, status string) (*store_models.Purchase, error)
	CreateLead(ctx context.Context, req *request_models.CreateLeadRequest) (*store_models.Lead, error)
	UpdateLeadStatus(ctx context.Context, ref, ownerRef, identityKey, status string) (*store_models.Lead, error)
}

type transactionService struct {
	pages     repositories.PageRepository
	purchases repositories.PurchaseRepository
	leads     repositories.LeadRepository
	logger    *zap.Logger
}

func NewTransactionService(
	pages repositories.PageRepository,
	purchases repositories.PurchaseRepository,
	leads repositories.LeadRepository,
	logger *zap.Logger,
) TransactionService {
	return &transactionService{
		pages:     pages,
		purchases: purchases,
		leads:     leads,
		logger:    logger,
	}
}

// purchaseTransitions is the allowed next-status set per current status.
// Delivered and cancelled are terminal.
var purchaseTransitions = map[store_models.PurchaseStatus][]store_models.PurchaseStatus{
	store_models.PurchasePending:   {store_models.PurchaseConfirmed, store_models.PurchaseCancelled},
	store_models.PurchaseConfirmed: {store_models.PurchaseShipped, store_models.PurchaseCancelled},
	store_models.PurchaseShipped:   {store_models.PurchaseDelivered, store_models.PurchaseCancelled},
}

var leadStatuses = map[store_models.LeadStatus]bool{
	store_models.LeadPending:   true,
	store_models.LeadConfirmed: true,
	store_models.LeadCancelled: true,
	store_models.LeadDone:      true,
}

// CreatePurchase records a buyer order against an active page. The total is
// recomputed from the line items when the caller omits it.
func (t *transactionService) CreatePurchase(ctx context.Context, req *request_models.CreatePurchaseRequest) (*store_models.Purchase, error) {
	page, err := t.activePage(ctx, req.PageID)
	if err != nil {
		return nil, err
	}

	items := make([]store_models.LineItem, 0, len(req.Products))
	computed := 0.0
	for _, item := range req.Products {
		if item.Name == "" || item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: bad line item %q", utils.ErrValidation, item.Name)
		}
		items = append(items, store_models.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		computed += float64(item.Quantity) * item.UnitPrice
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: purchase without line items", utils.ErrValidation)
	}

	total := req.Total
	if total == 0 {
		total = computed
	}

	purchase, err := t.purchases.Create(ctx, &store_models.Purchase{
		PageID:          page.Ref(),
		Total:           total,
		PaymentMethod:   req.PaymentMethod,
		Status:          store_models.PurchasePending,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		Shipping:        req.Shipping,
		LineItems:       items,
	})
	if err != nil {
		return nil, err
	}

	t.logger.Info("purchase created",
		zap.String("purchase", purchase.ID),
		zap.String("page", page.Ref()),
		zap.Float64("total", total))
	return purchase, nil
}

// UpdatePurchaseStatus advances a purchase through its lifecycle, stamping
// the shipping and delivery timestamps as it goes.
func (t *transactionService) UpdatePurchaseStatus(ctx context.Context, ref, ownerRef, identityKey, status string) (*store_models.Purchase, error) {
	next := store_models.PurchaseStatus(status)

	purchase, err := t.purchases.FindByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := t.checkPageScope(ctx, purchase.PageID, ownerRef, identityKey); err != nil {
		return nil, err
	}
	if !transitionAllowed(purchase.Status, next) {
		return nil, fmt.Errorf("%w: cannot move purchase from %s to %s",
			utils.ErrValidation, purchase.Status, next)
	}

	data := map[string]interface{}{"purchaseStatus": next}
	now := time.Now().UTC()
	switch next {
	case store_models.PurchaseShipped:
		data["pickedAt"] = now
	case store_models.PurchaseDelivered:
		data["deliveredAt"] = now
	}

	updated, err := t.purchases.Update(ctx, ref, data)
	if err != nil {
		return nil, err
	}

	t.logger.Info("purchase status updated",
		zap.String("purchase", ref),
		zap.String("status", status))
	return updated, nil
}

func (t *transactionService) CreateLead(ctx context.Context, req *request_models.CreateLeadRequest) (*store_models.Lead, error) {
	page, err := t.activePage(ctx, req.PageID)
	if err != nil {
		return nil, err
	}
	if req.Phone == "" && req.Email == "" {
		return nil, fmt.Errorf("%w: lead needs phone or email", utils.ErrValidation)
	}

	lead := &store_models.Lead{
		PageID:            page.Ref(),
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Message:           req.Message,
		AppointmentStatus: store_models.LeadPending,
	}
	if req.AppointmentDate != "" {
		when := utils.ParseStoreTime(req.AppointmentDate)
		if when.IsZero() {
			return nil, fmt.Errorf("%w: bad appointmentDate %q", utils.ErrValidation, req.AppointmentDate)
		}
		lead.AppointmentDate = when
	}

	created, err := t.leads.Create(ctx, lead)
	if err != nil {
		return nil, err
	}

	t.logger.Info("lead created",
		zap.String("lead", created.ID),
		zap.String("page", page.Ref()))
	return created, nil
}

func (t *transactionService) UpdateLeadStatus(ctx context.Context, ref, ownerRef, identityKey, status string) (*store_models.Lead, error) {
	next := store_models.LeadStatus(status)
	if !leadStatuses[next] {
		return nil, fmt.Errorf("%w: unknown lead status %q", utils.ErrValidation, status)
	}

	lead, err := t.leads.FindByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := t.checkPageScope(ctx, lead.PageID, ownerRef, identityKey); err != nil {
		return nil, err
	}

	updated, err := t.leads.Update(ctx, ref, map[string]interface{}{
		"appointmentStatus": next,
	})
	if err != nil {
		return nil, err
	}

	t.logger.Info("lead status updated",
		zap.String("lead", ref),
		zap.String("status", status))
	return updated, nil
}

func (t *transactionService) activePage(ctx context.Context, pageRef string) (*store_models.Page, error) {
	page, err := t.pages.FindByRef(ctx, pageRef)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return nil, utils.ErrPageNotFound
		}
		return nil, err
	}
	if !page.IsActive {
		return nil, utils.ErrPageNotFound
	}
	return page, nil
}

func (t *transactionService) checkPageScope(ctx context.Context, pageRef, ownerRef, identityKey string) error {
	page, err := t.pages.FindByRef(ctx, pageRef)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return utils.ErrPageNotFound
		}
		return err
	}
	if !ownedBy(page, ownerRef, identityKey) {
		return utils.ErrInvalidScope
	}
	return nil
}

func transitionAllowed(from, to store_models.PurchaseStatus) bool {
	for _, allowed := range purchaseTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
