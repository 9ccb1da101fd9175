package utils

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func slugParts(t *testing.T, slug string) (clean, frag string, ts int64) {
	t.Helper()
	parts := strings.Split(slug, "-")
	require.GreaterOrEqual(t, len(parts), 3)
	ts, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	require.NoError(t, err)
	return strings.Join(parts[:len(parts)-2], "-"), parts[len(parts)-2], ts
}

func TestGenerateSlugEnglishTitle(t *testing.T) {
	slug := GenerateSlug("Dana's Flower Shop!", "user-8f2c91ab")
	assert.True(t, slugShape.MatchString(slug), slug)

	clean, frag, ts := slugParts(t, slug)
	assert.Equal(t, "dana-s-flower-shop", clean)
	assert.Equal(t, "user8f2c", frag)
	assert.InDelta(t, time.Now().UnixMilli(), ts, 5000)
}

func TestGenerateSlugHebrewTitleFallsBack(t *testing.T) {
	clean, frag, _ := slugParts(t, GenerateSlug("חנות הפרחים של דנה", "owner123"))
	assert.Equal(t, "page", clean)
	assert.Equal(t, "owner123", frag)
}

func TestGenerateSlugMixedTitleKeepsLatin(t *testing.T) {
	clean, _, _ := slugParts(t, GenerateSlug("סטודיו Pilates פלוס", "k"))
	assert.Equal(t, "pilates", clean)
}

func TestGenerateSlugAnonymousOwner(t *testing.T) {
	_, frag, _ := slugParts(t, GenerateSlug("My Page", ""))
	assert.Equal(t, "anon", frag)
}

func TestGenerateSlugLongTitleTruncated(t *testing.T) {
	clean, _, _ := slugParts(t, GenerateSlug(strings.Repeat("word ", 30), "k"))
	assert.LessOrEqual(t, len(clean), 50)
	assert.False(t, strings.HasSuffix(clean, "-"))
}

func TestGenerateSlugUniquePerCall(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		slug := GenerateSlug("same title", "same-owner")
		assert.False(t, seen[slug], "duplicate slug %s", slug)
		seen[slug] = true
		time.Sleep(2 * time.Millisecond)
	}
}
