package response_models

import (
	"time"

	"autopage/internal/models/store_models"
)

type CreatePageResponse struct {
	PageID     string `json:"pageId"`
	DocumentID string `json:"documentId,omitempty"`
	Slug       string `json:"slug"`
	PageURL    string `json:"pageUrl"`
}

// Provenance records which ownership channel matched a page during
// reconciliation. Diagnostic only: every value means "owned".
type Provenance string

const (
	ProvenanceRelation Provenance = "relation"
	ProvenanceKey      Provenance = "key"
	ProvenanceBoth     Provenance = "both"
)

type OwnedPage struct {
	ID         string                `json:"id"`
	DocumentID string                `json:"documentId,omitempty"`
	Title      string                `json:"title"`
	Slug       string                `json:"slug"`
	PageType   store_models.PageType `json:"pageType"`
	IsActive   bool                  `json:"isActive"`
	Provenance Provenance            `json:"provenance"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

type PageDetail struct {
	ID          string                 `json:"id"`
	DocumentID  string                 `json:"documentId,omitempty"`
	Title       string                 `json:"title"`
	Slug        string                 `json:"slug"`
	PageType    store_models.PageType  `json:"pageType"`
	Description string                 `json:"description,omitempty"`
	Phone       string                 `json:"phone,omitempty"`
	Email       string                 `json:"email,omitempty"`
	City        string                 `json:"city,omitempty"`
	Address     string                 `json:"address,omitempty"`
	IsActive    bool                   `json:"isActive"`
	Sections    []store_models.Section `json:"sections"`
	Products    []store_models.Product `json:"products,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
