package store_models

import "time"

type PageType string

const (
	PageTypeStore      PageType = "store"
	PageTypeEvent      PageType = "event"
	PageTypeService    PageType = "service"
	PageTypeRestaurant PageType = "restaurant"
	PageTypeCourse     PageType = "course"
	PageTypeWorkshop   PageType = "workshop"
	PageTypeArtist     PageType = "artist"
	PageTypeGeneric    PageType = "generic"
)

// IsCommerce reports whether pages of this type sell line items and
// therefore carry a product catalog and a mandatory products section.
func (t PageType) IsCommerce() bool {
	switch t {
	case PageTypeStore, PageTypeRestaurant, PageTypeCourse:
		return true
	}
	return false
}

type SubscriptionStatus string

const (
	SubStatusNone    SubscriptionStatus = "none"
	SubStatusActive  SubscriptionStatus = "active"
	SubStatusExpired SubscriptionStatus = "expired"
)

// Page is one tenant-authored, publicly renderable unit. Ownership travels
// over two channels: OwnerRef (relation to an Owner record) and OwnerKey
// (legacy free-text identity string). Legacy pages may carry either one;
// every write path sets both when both are known.
type Page struct {
	ID         string
	DocumentID string
	Title      string
	Slug       string
	PageType   PageType

	OwnerRef string
	OwnerKey string

	Description string
	Phone       string
	Email       string
	City        string
	Address     string

	Sections []Section
	Products []Product

	IsActive           bool
	SubscriptionStatus SubscriptionStatus
	Metadata           map[string]interface{}

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref is the store identifier used in URLs and relations: the document id
// when the store assigned one, else the numeric id.
func (p *Page) Ref() string {
	if p.DocumentID != "" {
		return p.DocumentID
	}
	return p.ID
}

// Orphaned reports a page with neither ownership channel set. Such pages are
// unowned: reconciliation must never assign them to anyone.
func (p *Page) Orphaned() bool {
	return p.OwnerRef == "" && p.OwnerKey == ""
}
