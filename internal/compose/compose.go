// Package compose builds and manipulates the ordered section list of a
// page. Composition is a pure function of the page type, the extracted
// metadata and the requested optional sections: the same inputs always
// yield the same sections, with identifiers assigned later at persistence
// time.
package compose

import (
	"sort"

	"autopage/internal/extract"
	"autopage/internal/models/store_models"
)

// sectionOrder is the canonical layout position per section type. Contact
// always renders last.
var sectionOrder = map[store_models.SectionType]int{
	store_models.SectionAbout:        0,
	store_models.SectionProducts:     1,
	store_models.SectionGallery:      2,
	store_models.SectionServices:     3,
	store_models.SectionPricing:      4,
	store_models.SectionTeam:         5,
	store_models.SectionVideo:        6,
	store_models.SectionTestimonials: 7,
	store_models.SectionFAQ:          8,
	store_models.SectionAppointments: 9,
	store_models.SectionContact:      99,
}

// Compose assembles the section list for a new page. Contact is always
// present; commerce page types additionally get a products section. The
// requested optional sections are added on top, unknown names ignored,
// duplicates collapsed.
func Compose(pageType store_models.PageType, meta extract.Result, requested []string) []store_models.Section {
	include := map[store_models.SectionType]bool{
		store_models.SectionContact: true,
	}
	if pageType.IsCommerce() {
		include[store_models.SectionProducts] = true
	}
	for _, name := range requested {
		st := store_models.SectionType(name)
		if _, known := sectionOrder[st]; known {
			include[st] = true
		}
	}

	sections := make([]store_models.Section, 0, len(include))
	for st := range include {
		sections = append(sections, store_models.Section{
			Type:    st,
			Order:   sectionOrder[st],
			Enabled: true,
			Data:    sectionData(st, meta),
		})
	}
	Sort(sections)
	return sections
}

// Sort orders sections by their Order field, stable so that equal orders
// keep their current relative position.
func Sort(sections []store_models.Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
}

// Reorder rewrites section orders to follow ids. Sections not listed keep
// their relative order after the listed ones. An id that matches no section
// is ignored.
func Reorder(sections []store_models.Section, ids []string) []store_models.Section {
	position := map[string]int{}
	for i, id := range ids {
		position[id] = i
	}

	listed := make([]store_models.Section, 0, len(sections))
	rest := make([]store_models.Section, 0, len(sections))
	for _, s := range sections {
		if _, ok := position[s.ID]; ok {
			listed = append(listed, s)
		} else {
			rest = append(rest, s)
		}
	}
	sort.SliceStable(listed, func(i, j int) bool {
		return position[listed[i].ID] < position[listed[j].ID]
	})

	result := append(listed, rest...)
	for i := range result {
		result[i].Order = i
	}
	return result
}

// Toggle flips the enabled flag of the section with the given id and
// reports whether it was found.
func Toggle(sections []store_models.Section, id string, enabled bool) bool {
	for i := range sections {
		if sections[i].ID == id {
			sections[i].Enabled = enabled
			return true
		}
	}
	return false
}
