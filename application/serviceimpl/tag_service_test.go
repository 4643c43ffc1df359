// application/serviceimpl/tag_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tszwong/notizen-api/application/writequeue"
	"github.com/tszwong/notizen-api/domain/service"
)

type tagFixture struct {
	svc      service.TagService
	listSvc  service.ListService
	tagRepo  *fakeTagRepo
	listRepo *fakeListRepo
	ownerID  uuid.UUID
}

func newTagFixture(t *testing.T) *tagFixture {
	t.Helper()
	tagRepo := newFakeTagRepo()
	listRepo := newFakeListRepo()
	queue := writequeue.New()
	return &tagFixture{
		svc:      NewTagService(tagRepo, listRepo, queue),
		listSvc:  NewListService(listRepo, newFakeStatsRepo(), queue, &fakeWS{}),
		tagRepo:  tagRepo,
		listRepo: listRepo,
		ownerID:  uuid.New(),
	}
}

func TestCreateTagTrimsAndValidates(t *testing.T) {
	f := newTagFixture(t)

	_, err := f.svc.CreateTag(f.ownerID, "  ", "")
	require.EqualError(t, err, "tag name is required")

	tag, err := f.svc.CreateTag(f.ownerID, "  urgent  ", "#f00")
	require.NoError(t, err)
	assert.Equal(t, "urgent", tag.Name)
	assert.Equal(t, "#f00", tag.Color)
}

func TestUpdateTagKeepsUnsetFields(t *testing.T) {
	f := newTagFixture(t)
	tag, err := f.svc.CreateTag(f.ownerID, "work", "#00f")
	require.NoError(t, err)

	updated, err := f.svc.UpdateTag(tag.ID, f.ownerID, "office", "")
	require.NoError(t, err)
	assert.Equal(t, "office", updated.Name)
	assert.Equal(t, "#00f", updated.Color)

	_, err = f.svc.UpdateTag(uuid.New(), f.ownerID, "x", "")
	require.EqualError(t, err, "tag not found")
}

func TestDeleteTagStripsReferencesFromLists(t *testing.T) {
	f := newTagFixture(t)
	tag, err := f.svc.CreateTag(f.ownerID, "errands", "")
	require.NoError(t, err)
	other, err := f.svc.CreateTag(f.ownerID, "home", "")
	require.NoError(t, err)

	listA, err := f.listSvc.CreateList(f.ownerID, "A", "")
	require.NoError(t, err)
	listB, err := f.listSvc.CreateList(f.ownerID, "B", "")
	require.NoError(t, err)
	listC, err := f.listSvc.CreateList(f.ownerID, "C", "")
	require.NoError(t, err)

	_, err = f.listSvc.AddTagToList(listA.ID, f.ownerID, tag.ID.String())
	require.NoError(t, err)
	_, err = f.listSvc.AddTagToList(listA.ID, f.ownerID, other.ID.String())
	require.NoError(t, err)
	_, err = f.listSvc.AddTagToList(listB.ID, f.ownerID, tag.ID.String())
	require.NoError(t, err)
	_, err = f.listSvc.AddTagToList(listC.ID, f.ownerID, other.ID.String())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTag(tag.ID, f.ownerID))

	// the tag is gone, and only its references were stripped
	tags, err := f.svc.GetUserTags(f.ownerID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "home", tags[0].Name)

	gotA, err := f.listSvc.GetList(listA.ID, f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID.String()}, []string(gotA.TagIDs))

	gotB, err := f.listSvc.GetList(listB.ID, f.ownerID)
	require.NoError(t, err)
	assert.Empty(t, gotB.TagIDs)

	// a list that never referenced the tag is not written at all
	gotC, err := f.listSvc.GetList(listC.ID, f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID.String()}, []string(gotC.TagIDs))
}

func TestDeleteTagToleratesFailedStrips(t *testing.T) {
	f := newTagFixture(t)
	tag, err := f.svc.CreateTag(f.ownerID, "stale", "")
	require.NoError(t, err)

	listA, err := f.listSvc.CreateList(f.ownerID, "A", "")
	require.NoError(t, err)
	listB, err := f.listSvc.CreateList(f.ownerID, "B", "")
	require.NoError(t, err)
	_, err = f.listSvc.AddTagToList(listA.ID, f.ownerID, tag.ID.String())
	require.NoError(t, err)
	_, err = f.listSvc.AddTagToList(listB.ID, f.ownerID, tag.ID.String())
	require.NoError(t, err)

	// one list refuses the strip write; the delete still succeeds and the
	// other list is cleaned up
	f.listRepo.failWritesTo(listA.ID)

	require.NoError(t, f.svc.DeleteTag(tag.ID, f.ownerID))

	gotA, err := f.listSvc.GetList(listA.ID, f.ownerID)
	require.NoError(t, err)
	assert.True(t, gotA.HasTag(tag.ID.String()), "failed strip leaves the dangling reference")

	gotB, err := f.listSvc.GetList(listB.ID, f.ownerID)
	require.NoError(t, err)
	assert.False(t, gotB.HasTag(tag.ID.String()))
}

func TestDeleteTagKeepsConcurrentlyAddedReference(t *testing.T) {
	f := newTagFixture(t)
	doomed, err := f.svc.CreateTag(f.ownerID, "doomed", "")
	require.NoError(t, err)
	keeper, err := f.svc.CreateTag(f.ownerID, "keeper", "")
	require.NoError(t, err)

	list, err := f.listSvc.CreateList(f.ownerID, "inbox", "")
	require.NoError(t, err)
	_, err = f.listSvc.AddTagToList(list.ID, f.ownerID, doomed.ID.String())
	require.NoError(t, err)

	// Another tag lands on the list after the cascade takes its snapshot
	// but before the strip write runs. The strip must not overwrite it.
	f.listRepo.onNextFindByTagID(func() {
		_, err := f.listSvc.AddTagToList(list.ID, f.ownerID, keeper.ID.String())
		require.NoError(t, err)
	})

	require.NoError(t, f.svc.DeleteTag(doomed.ID, f.ownerID))

	got, err := f.listSvc.GetList(list.ID, f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, []string{keeper.ID.String()}, []string(got.TagIDs))
}

func TestDeleteUnknownTag(t *testing.T) {
	f := newTagFixture(t)
	require.EqualError(t, f.svc.DeleteTag(uuid.New(), f.ownerID), "tag not found")
}

func TestTagOwnershipIsEnforced(t *testing.T) {
	f := newTagFixture(t)
	tag, err := f.svc.CreateTag(f.ownerID, "private", "")
	require.NoError(t, err)

	require.EqualError(t, f.svc.DeleteTag(tag.ID, uuid.New()), "tag not found")
}
