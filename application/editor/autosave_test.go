// application/editor/autosave_test.go
package editor

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tszwong/notizen-api/application/writequeue"
	"github.com/tszwong/notizen-api/domain/models"
)

const testDelay = 25 * time.Millisecond

type savedDraft struct {
	ID      *uuid.UUID
	Title   string
	Content string
}

// fakeStore records SaveDraft calls and assigns identities on create.
type fakeStore struct {
	mu      sync.Mutex
	saves   []savedDraft
	creates int
	fail    error
}

func (f *fakeStore) SaveDraft(id *uuid.UUID, ownerID uuid.UUID, title, content string) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail != nil {
		return nil, f.fail
	}

	f.saves = append(f.saves, savedDraft{ID: id, Title: title, Content: content})

	noteID := uuid.New()
	if id != nil {
		noteID = *id
	} else {
		f.creates++
	}

	now := time.Now()
	return &models.Note{
		ID:        noteID,
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (f *fakeStore) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func (f *fakeStore) lastSave() savedDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves[len(f.saves)-1]
}

func newTestController(store *fakeStore, noteID *uuid.UUID, opts ...AutosaveOption) *AutosaveController {
	opts = append([]AutosaveOption{WithDelay(testDelay)}, opts...)
	return NewAutosaveController(uuid.New(), noteID, "", "", store, writequeue.New(), opts...)
}

func TestBurstOfEditsCoalescesIntoOneWrite(t *testing.T) {
	store := &fakeStore{}
	c := newTestController(store, nil)

	c.Observe("t", "h")
	c.Observe("t", "he")
	c.Observe("t", "hel")
	c.Observe("t", "hell")
	c.Observe("t", "hello")

	require.Eventually(t, func() bool {
		return store.saveCount() == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "hello", store.lastSave().Content, "only the state after the last edit is written")

	// No trailing second write sneaks in.
	time.Sleep(3 * testDelay)
	assert.Equal(t, 1, store.saveCount())
}

func TestRevertToBaselineCancelsPendingWrite(t *testing.T) {
	store := &fakeStore{}
	c := newTestController(store, nil)

	c.Observe("t", "draft")
	assert.True(t, c.Saving())

	// Back to the persisted state before the timer fires.
	c.Observe("", "")
	assert.False(t, c.Saving())
	assert.False(t, c.Dirty())

	time.Sleep(3 * testDelay)
	assert.Zero(t, store.saveCount(), "reverted edit must not be written")
}

func TestFirstFlushAdoptsIdentity(t *testing.T) {
	store := &fakeStore{}
	c := newTestController(store, nil)

	require.Nil(t, c.NoteID())

	c.Observe("t", "first")
	require.Eventually(t, func() bool {
		return c.NoteID() != nil
	}, time.Second, 5*time.Millisecond)

	adopted := *c.NoteID()

	c.Observe("t", "second")
	require.Eventually(t, func() bool {
		return store.saveCount() == 2
	}, time.Second, 5*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, 1, store.creates, "a second create must never happen")
	require.NotNil(t, store.saves[1].ID)
	assert.Equal(t, adopted, *store.saves[1].ID, "later flushes target the adopted id")
}

// gatedStore stalls the first SaveDraft until released, so a later flush can
// be interleaved behind an in-flight create.
type gatedStore struct {
	fakeStore
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedStore) SaveDraft(id *uuid.UUID, ownerID uuid.UUID, title, content string) (*models.Note, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.fakeStore.SaveDraft(id, ownerID, title, content)
}

func TestSlowCreateNeverCausesSecondCreate(t *testing.T) {
	store := &gatedStore{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := NewAutosaveController(uuid.New(), nil, "", "", store, writequeue.New(), WithDelay(testDelay))

	c.Observe("t", "first")

	select {
	case <-store.entered:
	case <-time.After(time.Second):
		t.Fatal("first flush never reached the store")
	}

	// A second edit debounces and fires while the create is still in
	// flight; its flush must queue behind the create and target the
	// adopted identity, not issue another create.
	c.Observe("t", "second")
	time.Sleep(3 * testDelay)

	close(store.release)

	require.Eventually(t, func() bool {
		return store.saveCount() == 2
	}, time.Second, 5*time.Millisecond)

	adopted := c.NoteID()
	require.NotNil(t, adopted)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, 1, store.creates, "in-flight create must absorb the follow-up flush")
	require.NotNil(t, store.saves[1].ID)
	assert.Equal(t, *adopted, *store.saves[1].ID)
}

func TestFlushFailureIsSwallowed(t *testing.T) {
	store := &fakeStore{fail: errors.New("connection refused")}
	c := newTestController(store, nil)

	c.Observe("t", "doomed")

	require.Eventually(t, func() bool {
		return !c.Saving()
	}, time.Second, 5*time.Millisecond, "indicator clears after a failed flush")

	assert.True(t, c.Dirty(), "failed content stays dirty")

	// The next edit recovers with the latest content.
	store.mu.Lock()
	store.fail = nil
	store.mu.Unlock()

	c.Observe("t", "recovered")
	require.Eventually(t, func() bool {
		return store.saveCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "recovered", store.lastSave().Content)
}

func TestExplicitFlushBypassesDebounce(t *testing.T) {
	store := &fakeStore{}
	c := newTestController(store, nil, WithDelay(time.Hour))

	c.Observe("t", "save me now")

	note, err := c.Flush()
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "save me now", note.Content)
	assert.Equal(t, 1, store.saveCount())
	assert.False(t, c.Dirty())
}

func TestFlushOnCleanNoteIsNoOp(t *testing.T) {
	store := &fakeStore{}
	c := newTestController(store, nil)

	note, err := c.Flush()
	require.NoError(t, err)
	assert.Nil(t, note)
	assert.Zero(t, store.saveCount())
}

func TestCloseCancelsPendingFlush(t *testing.T) {
	store := &fakeStore{}
	c := newTestController(store, nil)

	c.Observe("t", "about to navigate away")
	c.Close()

	time.Sleep(3 * testDelay)
	assert.Zero(t, store.saveCount(), "a stale write must not land after close")
	assert.False(t, c.Saving())
}

func TestSavedHookDeliversServerTimestamps(t *testing.T) {
	store := &fakeStore{}

	var mu sync.Mutex
	var got *models.Note
	c := newTestController(store, nil, WithSavedHook(func(note *models.Note) {
		mu.Lock()
		got = note
		mu.Unlock()
	}))

	c.Observe("t", "content")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, got.UpdatedAt.IsZero())
	assert.NotEqual(t, uuid.Nil, got.ID)
}
