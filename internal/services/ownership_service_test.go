package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autopage/internal/models/request_models"
	"autopage/internal/models/response_models"
	"autopage/internal/models/store_models"
	"autopage/pkg/utils"
)

func newOwnershipFixture() (*fakePageRepo, *fakeOwnerRepo, OwnershipService) {
	pages := newFakePageRepo()
	owners := newFakeOwnerRepo()
	return pages, owners, NewOwnershipService(pages, owners, zap.NewNop())
}

func TestListOwnedPagesMergesBothChannels(t *testing.T) {
	pages, _, service := newOwnershipFixture()
	now := time.Now()
	pages.add(&store_models.Page{Title: "relation only", OwnerRef: "owner-1", CreatedAt: now})
	pages.add(&store_models.Page{Title: "key only", OwnerKey: "key-1", CreatedAt: now.Add(-time.Hour)})
	pages.add(&store_models.Page{Title: "both", OwnerRef: "owner-1", OwnerKey: "key-1", CreatedAt: now.Add(-2 * time.Hour)})
	pages.add(&store_models.Page{Title: "someone else", OwnerRef: "owner-2", CreatedAt: now})

	owned, err := service.ListOwnedPages(context.Background(), "owner-1", "key-1")
	require.NoError(t, err)
	require.Len(t, owned, 3)

	byTitle := map[string]response_models.Provenance{}
	for _, page := range owned {
		byTitle[page.Title] = page.Provenance
	}
	assert.Equal(t, response_models.ProvenanceRelation, byTitle["relation only"])
	assert.Equal(t, response_models.ProvenanceKey, byTitle["key only"])
	assert.Equal(t, response_models.ProvenanceBoth, byTitle["both"])

	// Newest first.
	assert.Equal(t, "relation only", owned[0].Title)
}

func TestListOwnedPagesConflictRelationWins(t *testing.T) {
	pages, _, service := newOwnershipFixture()
	pages.add(&store_models.Page{Title: "disputed", OwnerRef: "owner-2", OwnerKey: "key-1"})
	pages.add(&store_models.Page{Title: "mine", OwnerKey: "key-1"})

	owned, err := service.ListOwnedPages(context.Background(), "owner-1", "key-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "mine", owned[0].Title)
}

func TestListOwnedPagesSingleChannelCallers(t *testing.T) {
	pages, _, service := newOwnershipFixture()
	pages.add(&store_models.Page{Title: "a", OwnerRef: "owner-1"})
	pages.add(&store_models.Page{Title: "b", OwnerKey: "key-1"})

	relationOnly, err := service.ListOwnedPages(context.Background(), "owner-1", "")
	require.NoError(t, err)
	require.Len(t, relationOnly, 1)
	assert.Equal(t, "a", relationOnly[0].Title)

	keyOnly, err := service.ListOwnedPages(context.Background(), "", "key-1")
	require.NoError(t, err)
	require.Len(t, keyOnly, 1)
	assert.Equal(t, "b", keyOnly[0].Title)
}

func TestListOwnedPagesRequiresIdentity(t *testing.T) {
	_, _, service := newOwnershipFixture()
	_, err := service.ListOwnedPages(context.Background(), "", "")
	assert.ErrorIs(t, err, utils.ErrInvalidScope)
}

func TestListOwnedPagesPropagatesLookupErrors(t *testing.T) {
	pages, _, service := newOwnershipFixture()
	pages.listByKeyErr = assert.AnError

	_, err := service.ListOwnedPages(context.Background(), "owner-1", "key-1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAttachOwnerSetsBothChannels(t *testing.T) {
	pages, owners, service := newOwnershipFixture()
	owner, err := owners.Create(context.Background(), &store_models.Owner{IdentityKey: "dana@example.com"})
	require.NoError(t, err)
	page := pages.add(&store_models.Page{Title: "orphan"})

	err = service.AttachOwner(context.Background(), page.Ref(), &request_models.AttachOwnerRequest{
		OwnerID: owner.ID,
	})
	require.NoError(t, err)

	updated, err := pages.FindByRef(context.Background(), page.Ref())
	require.NoError(t, err)
	assert.Equal(t, owner.ID, updated.OwnerRef)
	assert.Equal(t, "dana@example.com", updated.OwnerKey)
	assert.False(t, updated.Orphaned())
}

func TestAttachOwnerCreatesOwnerFromKey(t *testing.T) {
	pages, owners, service := newOwnershipFixture()
	page := pages.add(&store_models.Page{Title: "orphan"})

	err := service.AttachOwner(context.Background(), page.Ref(), &request_models.AttachOwnerRequest{
		IdentityKey: "new@example.com",
	})
	require.NoError(t, err)

	owner, err := owners.FindByIdentityKey(context.Background(), "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, owner)

	updated, err := pages.FindByRef(context.Background(), page.Ref())
	require.NoError(t, err)
	assert.Equal(t, owner.ID, updated.OwnerRef)
	assert.Equal(t, "new@example.com", updated.OwnerKey)
}

func TestAttachOwnerUnknownOwner(t *testing.T) {
	pages, _, service := newOwnershipFixture()
	page := pages.add(&store_models.Page{})

	err := service.AttachOwner(context.Background(), page.Ref(), &request_models.AttachOwnerRequest{
		OwnerID: "ghost",
	})
	assert.ErrorIs(t, err, utils.ErrOwnerNotFound)
}

func TestAttachOwnerMissingPage(t *testing.T) {
	_, owners, service := newOwnershipFixture()
	owner, err := owners.Create(context.Background(), &store_models.Owner{IdentityKey: "k"})
	require.NoError(t, err)

	err = service.AttachOwner(context.Background(), "missing", &request_models.AttachOwnerRequest{
		OwnerID: owner.ID,
	})
	assert.ErrorIs(t, err, utils.ErrPageNotFound)
}

func TestAttachOwnerRequiresIdentity(t *testing.T) {
	_, _, service := newOwnershipFixture()
	err := service.AttachOwner(context.Background(), "page-1", &request_models.AttachOwnerRequest{})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateOrFindIsIdempotent(t *testing.T) {
	_, _, service := newOwnershipFixture()

	first, err := service.CreateOrFind(context.Background(), "dana@example.com", "Dana", "dana@example.com")
	require.NoError(t, err)

	second, err := service.CreateOrFind(context.Background(), "dana@example.com", "", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
