package extract

import (
	"strings"

	"autopage/internal/models/store_models"
)

type weightedKeyword struct {
	keyword string
	weight  int
}

// Keyword tables for page-type classification. Every occurrence of a keyword
// contributes its weight to the type's score; the highest total wins. The
// Hebrew sets mirror the phrasing users actually paste in.
var typeKeywords = map[store_models.PageType][]weightedKeyword{
	store_models.PageTypeStore: {
		{"addtocart", 3}, {"shopping-cart", 3}, {"product-card", 3}, {"btn-add-cart", 3},
		{"הוסף לעגלה", 3}, {"קנה עכשיו", 3}, {"מוצר", 2}, {"חנות", 2},
		{"store", 1}, {"shop", 1},
	},
	store_models.PageTypeEvent: {
		{"rsvp", 3}, {"אישור הגעה", 3}, {"הזמנה לאירוע", 3}, {"countdown-timer", 3},
		{"מוזמנים", 2}, {"חתונה", 2}, {"wedding", 2}, {"בר מצווה", 2}, {"אירוע", 2},
	},
	store_models.PageTypeService: {
		{"קביעת תור", 3}, {"appointment", 3}, {"booking", 2}, {"תור", 2},
		{"זמן פנוי", 2}, {"מספרה", 2}, {"barber", 2}, {"hairdresser", 2}, {"salon", 2},
		{"schedule", 1}, {"calendar", 1},
	},
	store_models.PageTypeRestaurant: {
		{"מסעדה", 3}, {"restaurant", 3}, {"תפריט", 2}, {"menu", 2}, {"משלוחים", 1},
	},
	store_models.PageTypeCourse: {
		{"קורס", 3}, {"course", 3}, {"סילבוס", 2}, {"שיעור", 2}, {"lesson", 2},
	},
	store_models.PageTypeWorkshop: {
		{"סדנה", 3}, {"workshop", 3}, {"הרשמה לסדנה", 3},
	},
}

// typePriority breaks score ties: commerce types before everything else.
var typePriority = []store_models.PageType{
	store_models.PageTypeStore,
	store_models.PageTypeEvent,
	store_models.PageTypeService,
	store_models.PageTypeRestaurant,
	store_models.PageTypeCourse,
	store_models.PageTypeWorkshop,
}

// ClassifyPageType detects the page type from raw content. An explicit
// declared type always wins; a zero total score falls back to generic.
func ClassifyPageType(raw string, declared store_models.PageType) store_models.PageType {
	if declared != "" {
		return declared
	}

	lower := strings.ToLower(raw)

	best := store_models.PageTypeGeneric
	bestScore := 0
	for _, pt := range typePriority {
		score := 0
		for _, kw := range typeKeywords[pt] {
			score += strings.Count(lower, kw.keyword) * kw.weight
		}
		if score > bestScore {
			best = pt
			bestScore = score
		}
	}
	return best
}
