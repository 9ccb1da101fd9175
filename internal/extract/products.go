package extract

import (
	"regexp"
	"strconv"
	"strings"

	"autopage/internal/models/store_models"
)

const (
	productNameMinLen = 3
	productNameMaxLen = 80
	// Price window: how many following runes of text may separate a product
	// name from its price tag.
	priceWindowLen = 300

	priceMin    = 50
	priceMax    = 50000
	maxProducts = 20
)

// pricePatterns capture the numeric amount next to a currency marker, in
// either order.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[₪$]\s*(\d[\d,]*(?:\.\d+)?)`),
	regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*(?:₪|\$|שקל(?:ים)?|ש"ח|שח)`),
}

// candidateTags are the elements whose text is treated as a potential
// product name.
var candidateTags = map[string]bool{
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"strong": true, "b": true, "dt": true,
}

// excludedNames are headings that look like product names but belong to the
// page chrome.
var excludedNames = []string{
	"צור קשר", "יצירת קשר", "אודות", "עלינו", "המוצרים שלנו", "מוצרים",
	"שירותים", "השירותים שלנו", "גלריה", "המלצות", "שאלות נפוצות",
	"מחירון", "תפריט", "הצוות", "קטגוריות", "משלוח", "משלוחים",
	"contact", "about", "our products", "products", "services", "gallery",
	"testimonials", "faq", "pricing", "menu", "team", "categories",
	"shipping", "delivery", "terms", "privacy",
}

// ExtractProducts pairs candidate name headings with the nearest price
// found in the text that follows them. Names without a plausible price, and
// prices outside the sanity band, are dropped rather than guessed at.
func ExtractProducts(doc *document) []store_models.Product {
	var products []store_models.Product
	seen := map[string]bool{}

	for i, b := range doc.blocks {
		if !candidateTags[b.tag] {
			continue
		}
		name := strings.TrimSpace(b.text)
		if !plausibleProductName(name) {
			continue
		}
		price, ok := findPrice(doc.blocks, i)
		if !ok {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		products = append(products, store_models.Product{
			Name:    name,
			Price:   price,
			Enabled: true,
			Order:   len(products),
		})
		if len(products) == maxProducts {
			break
		}
	}
	return products
}

func plausibleProductName(name string) bool {
	n := len([]rune(name))
	if n < productNameMinLen || n > productNameMaxLen {
		return false
	}
	lower := strings.ToLower(name)
	for _, ex := range excludedNames {
		if lower == ex {
			return false
		}
	}
	// A heading that is itself a price tag is not a name.
	for _, p := range pricePatterns {
		if p.MatchString(name) {
			return false
		}
	}
	return true
}

// findPrice scans the candidate block and the blocks that follow it, up to
// the price window or the next candidate heading, whichever comes first.
func findPrice(blocks []textBlock, start int) (float64, bool) {
	budget := priceWindowLen
	for i := start; i < len(blocks) && budget > 0; i++ {
		if i > start && candidateTags[blocks[i].tag] {
			break
		}
		if price, ok := matchPrice(blocks[i].text); ok {
			return price, true
		}
		budget -= len([]rune(blocks[i].text))
	}
	return 0, false
}

func matchPrice(text string) (float64, bool) {
	for _, p := range pricePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if price, ok := parsePrice(m[1]); ok {
			return price, true
		}
	}
	return 0, false
}

func parsePrice(s string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || price < priceMin || price > priceMax {
		return 0, false
	}
	return price, true
}
