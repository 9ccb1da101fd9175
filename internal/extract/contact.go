package extract

import (
	"regexp"
	"strings"
)

// Phone matchers in priority order: international mobile, international
// landline, local mobile, local landline. The first pattern that matches
// wins and returns its first match as it appears in the document.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+972[-\s]?5\d[-\s]?\d{3}[-\s]?\d{4}`),
	regexp.MustCompile(`\+972[-\s]?\d[-\s]?\d{7}`),
	regexp.MustCompile(`05\d[-\s]?\d{3}[-\s]?\d{4}`),
	regexp.MustCompile(`05\d[-\s]?\d{7}`),
	regexp.MustCompile(`07\d[-\s]?\d{7}`),
	regexp.MustCompile(`0\d[-\s]?\d{7}`),
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Closed gazetteer, checked before the generic keyword fallback.
var israeliCities = []string{
	"תל אביב", "ירושלים", "חיפה", "ראשון לציון", "פתח תקווה", "אשדוד",
	"נתניה", "באר שבע", "בני ברק", "חולון", "רמת גן", "אשקלון", "רחובות",
	"בת ים", "כפר סבא", "הרצליה", "מודיעין", "נצרת", "לוד", "רמלה",
	"אילת", "רעננה", "חדרה", "גבעתיים", "הוד השרון", "נהריה", "עפולה",
}

var (
	// The keyword fallback needs an explicit delimiter: bare prose
	// containing "city" or "location" names no city.
	cityKeywordPattern    = regexp.MustCompile(`(?i)(?:עיר|מיקום|city|location)\s*[:：]\s*([\x{0590}-\x{05FF}a-zA-Z][\x{0590}-\x{05FF}a-zA-Z\s]{1,40})`)
	addressKeywordPattern = regexp.MustCompile(`(?i)(?:כתובת|address)[:\s]+([^<>\n]{5,80})`)
	streetPatterns        = []*regexp.Regexp{
		regexp.MustCompile(`רחוב\s+[\x{0590}-\x{05FF}\s\d]{2,60}`),
		regexp.MustCompile(`[\x{0590}-\x{05FF}]{2,}[\x{0590}-\x{05FF}\s]*\s\d{1,4},?\s*[\x{0590}-\x{05FF}\s]{2,40}`),
		regexp.MustCompile(`\d{1,5}\s+[A-Za-z]{2,}(?:\s+[A-Za-z]{2,})?\s+(?:St|Street|Ave|Rd|Blvd)\.?`),
	}
)

// ExtractContact applies each field matcher independently; a field with no
// match stays empty, never errors.
func ExtractContact(raw string) Contact {
	return Contact{
		Phone:   extractPhone(raw),
		Email:   extractEmail(raw),
		City:    extractCity(raw),
		Address: extractAddress(raw),
	}
}

func extractPhone(raw string) string {
	for _, pattern := range phonePatterns {
		if m := pattern.FindString(raw); m != "" && validPhoneDigits(m) {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// validPhoneDigits rejects placeholder numbers (all-same-digit, 0500000000)
// on the normalized digit form. The matched text itself is returned
// untouched.
func validPhoneDigits(match string) bool {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, match)
	digits = strings.TrimPrefix(digits, "972")
	if !strings.HasPrefix(digits, "0") {
		digits = "0" + digits
	}
	if len(digits) < 9 || len(digits) > 10 {
		return false
	}
	// Placeholder if the subscriber part is one repeated digit.
	tail := digits[len(digits)-7:]
	for i := 1; i < len(tail); i++ {
		if tail[i] != tail[0] {
			return true
		}
	}
	return false
}

func extractEmail(raw string) string {
	return emailPattern.FindString(raw)
}

func extractCity(raw string) string {
	for _, city := range israeliCities {
		if strings.Contains(raw, city) {
			return city
		}
	}
	if m := cityKeywordPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractAddress(raw string) string {
	if m := addressKeywordPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, pattern := range streetPatterns {
		if m := pattern.FindString(raw); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}
