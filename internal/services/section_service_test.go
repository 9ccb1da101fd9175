package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autopage/internal/models/store_models"
	"autopage/pkg/utils"
)

func newSectionFixture(t *testing.T) (*fakePageRepo, *fakeSectionRepo, SectionService, *store_models.Page) {
	t.Helper()
	pages := newFakePageRepo()
	sections := newFakeSectionRepo()
	service := NewSectionService(pages, sections, zap.NewNop())
	page := pages.add(&store_models.Page{OwnerRef: "owner-1", OwnerKey: "key-1", IsActive: true})

	_, err := sections.CreateForPage(context.Background(), page.Ref(), []store_models.Section{
		{Type: store_models.SectionAbout, Order: 0, Enabled: true},
		{Type: store_models.SectionGallery, Order: 1, Enabled: true},
		{Type: store_models.SectionContact, Order: 2, Enabled: true},
	})
	require.NoError(t, err)
	return pages, sections, service, page
}

func TestReorderSections(t *testing.T) {
	_, sections, service, page := newSectionFixture(t)

	reordered, err := service.ReorderSections(context.Background(), page.Ref(), "owner-1", "", []string{"sec-2", "sec-1"})
	require.NoError(t, err)
	require.Len(t, reordered, 3)
	assert.Equal(t, "sec-2", reordered[0].ID)
	assert.Equal(t, "sec-1", reordered[1].ID)
	assert.Equal(t, "sec-3", reordered[2].ID)
	for i, section := range reordered {
		assert.Equal(t, i, section.Order)
	}

	// Only sections whose position changed were written back.
	assert.Contains(t, sections.updated, "sec-2")
	assert.Contains(t, sections.updated, "sec-1")
	assert.NotContains(t, sections.updated, "sec-3")
}

func TestReorderSectionsScope(t *testing.T) {
	_, _, service, page := newSectionFixture(t)

	_, err := service.ReorderSections(context.Background(), page.Ref(), "owner-2", "stranger", []string{"sec-1"})
	assert.ErrorIs(t, err, utils.ErrInvalidScope)

	_, err = service.ReorderSections(context.Background(), "missing", "owner-1", "", []string{"sec-1"})
	assert.ErrorIs(t, err, utils.ErrPageNotFound)
}

func TestToggleSection(t *testing.T) {
	_, sections, service, page := newSectionFixture(t)

	toggled, err := service.ToggleSection(context.Background(), "sec-2", "owner-1", "", false)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)

	stored, _, err := sections.FindByRef(context.Background(), "sec-2")
	require.NoError(t, err)
	assert.False(t, stored.Enabled)
	_ = page
}

func TestToggleSectionErrors(t *testing.T) {
	_, _, service, _ := newSectionFixture(t)

	_, err := service.ToggleSection(context.Background(), "ghost", "owner-1", "", true)
	assert.ErrorIs(t, err, utils.ErrSectionNotFound)

	_, err = service.ToggleSection(context.Background(), "sec-1", "owner-2", "stranger", true)
	assert.ErrorIs(t, err, utils.ErrInvalidScope)
}
