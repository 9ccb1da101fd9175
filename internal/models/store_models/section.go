package store_models

type SectionType string

const (
	SectionAbout        SectionType = "about"
	SectionProducts     SectionType = "products"
	SectionGallery      SectionType = "gallery"
	SectionServices     SectionType = "services"
	SectionPricing      SectionType = "pricing"
	SectionTeam         SectionType = "team"
	SectionVideo        SectionType = "video"
	SectionTestimonials SectionType = "testimonials"
	SectionFAQ          SectionType = "faq"
	SectionAppointments SectionType = "appointments"
	SectionContact      SectionType = "contact"
)

// Section is a typed, orderable, toggleable content block. Data's shape is
// keyed by Type and evolves additively; disabled legacy sections are never
// migrated in place.
type Section struct {
	ID      string                 `json:"id,omitempty"`
	Type    SectionType            `json:"type"`
	Order   int                    `json:"order"`
	Enabled bool                   `json:"enabled"`
	Data    map[string]interface{} `json:"data"`
}

type Product struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Enabled     bool    `json:"enabled"`
	Order       int     `json:"order"`
}
