package request_models

type CreatePageRequest struct {
	Title      string `json:"title" binding:"required"`
	RawContent string `json:"rawContent"`

	// FormData is the structured alternative to RawContent; at least one of
	// the two must be present.
	FormData map[string]interface{} `json:"formData"`

	// PageType, when present, is authoritative over keyword detection.
	PageType string `json:"pageType"`

	OptionalSections []string `json:"optionalSections"`

	Metadata map[string]interface{} `json:"metadata"`
}

type AttachOwnerRequest struct {
	OwnerID     string `json:"ownerId"`
	IdentityKey string `json:"identityKey"`
}

type ReorderSectionsRequest struct {
	SectionIDs []string `json:"sectionIds" binding:"required"`
}

type ToggleSectionRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
