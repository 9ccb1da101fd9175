package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	hebrewRunes  = regexp.MustCompile(`[\x{0590}-\x{05FF}]`)
	nonSlugRunes = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

const (
	slugTitleMax     = 50
	slugFallback     = "page"
	slugAnonFragment = "anon"
)

// GenerateSlug derives a URL-safe page identifier from a title and the
// owner's identity key. The millisecond timestamp makes collisions within
// one owner practically impossible; callers that hit a store-level unique
// violation anyway should regenerate.
func GenerateSlug(title, ownerKey string) string {
	clean := strings.ToLower(strings.TrimSpace(title))
	clean = hebrewRunes.ReplaceAllString(clean, "")
	clean = nonSlugRunes.ReplaceAllString(clean, "-")
	clean = edgeHyphens.ReplaceAllString(clean, "")
	if len(clean) > slugTitleMax {
		clean = strings.Trim(clean[:slugTitleMax], "-")
	}
	if clean == "" {
		clean = slugFallback
	}

	frag := strings.ToLower(ownerKey)
	frag = nonSlugRunes.ReplaceAllString(frag, "")
	if len(frag) > 8 {
		frag = frag[:8]
	}
	if frag == "" {
		frag = slugAnonFragment
	}

	return clean + "-" + frag + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
