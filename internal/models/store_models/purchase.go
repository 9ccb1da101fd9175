package store_models

import "time"

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseConfirmed PurchaseStatus = "confirmed"
	PurchaseShipped   PurchaseStatus = "shipped"
	PurchaseDelivered PurchaseStatus = "delivered"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

type LineItem struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Purchase is immutable after creation except for Status and its
// status-derived timestamps.
type Purchase struct {
	ID     string
	PageID string

	Total         float64
	PaymentMethod string
	Status        PurchaseStatus

	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	Shipping        bool

	LineItems []LineItem

	CreatedAt   time.Time
	PickedAt    time.Time
	DeliveredAt time.Time
}

// CustomerIdentity is the uniqueness key for distinct-customer counts:
// email when present, else phone.
func (p *Purchase) CustomerIdentity() string {
	if p.CustomerEmail != "" {
		return p.CustomerEmail
	}
	return p.CustomerPhone
}
