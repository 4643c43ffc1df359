// application/serviceimpl/fakes_test.go
package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/types"
)

// fakeListRepo keeps lists in memory and records partial updates.
type fakeListRepo struct {
	mu       sync.Mutex
	lists    map[uuid.UUID]*models.TodoList
	updates  []map[string]interface{}
	failIDs  map[uuid.UUID]bool // UpdateFields error triggers
	findHook func()             // runs once after the next FindByTagID snapshot
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: make(map[uuid.UUID]*models.TodoList)}
}

func (f *fakeListRepo) Create(list *models.TodoList) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *list
	f.lists[list.ID] = &copied
	return nil
}

func (f *fakeListRepo) GetByID(id, ownerID uuid.UUID) (*models.TodoList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list, ok := f.lists[id]
	if !ok || list.OwnerID != ownerID {
		return nil, nil
	}
	copied := *list
	copied.Items = append(models.ChecklistItems{}, list.Items...)
	copied.TagIDs = append(types.StringArray{}, list.TagIDs...)
	return &copied, nil
}

func (f *fakeListRepo) Delete(id, ownerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.lists, id)
	return nil
}

func (f *fakeListRepo) UpdateFields(id, ownerID uuid.UUID, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failIDs[id] {
		return errors.New("write refused")
	}

	list, ok := f.lists[id]
	if !ok {
		return errors.New("list not found")
	}
	if items, ok := fields["items"].(models.ChecklistItems); ok {
		list.Items = append(models.ChecklistItems{}, items...)
	}
	if title, ok := fields["title"].(string); ok {
		list.Title = title
	}
	if color, ok := fields["color"].(string); ok {
		list.Color = color
	}
	if tagIDs, ok := fields["tag_ids"].(types.StringArray); ok {
		list.TagIDs = append(types.StringArray{}, tagIDs...)
	}

	f.updates = append(f.updates, fields)
	return nil
}

func (f *fakeListRepo) failWritesTo(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs == nil {
		f.failIDs = make(map[uuid.UUID]bool)
	}
	f.failIDs[id] = true
}

func (f *fakeListRepo) FindByOwnerID(ownerID uuid.UUID) ([]*models.TodoList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.TodoList
	for _, list := range f.lists {
		if list.OwnerID == ownerID {
			copied := *list
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeListRepo) FindByTagID(ownerID uuid.UUID, tagID string) ([]*models.TodoList, error) {
	f.mu.Lock()
	var out []*models.TodoList
	for _, list := range f.lists {
		if list.OwnerID == ownerID && list.HasTag(tagID) {
			copied := *list
			copied.TagIDs = append(types.StringArray{}, list.TagIDs...)
			out = append(out, &copied)
		}
	}
	hook := f.findHook
	f.findHook = nil
	f.mu.Unlock()

	// Mutations scheduled here land between the caller's snapshot and its
	// follow-up writes.
	if hook != nil {
		hook()
	}
	return out, nil
}

func (f *fakeListRepo) onNextFindByTagID(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findHook = fn
}

// fakeStatsRepo counts increments per dotted path.
type fakeStatsRepo struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{counters: make(map[string]int64)}
}

func (f *fakeStatsRepo) Increment(userID uuid.UUID, path string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[path] += amount
	return nil
}

func (f *fakeStatsRepo) FindByUserID(userID uuid.UUID) ([]*models.UserStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.UserStat
	for path, value := range f.counters {
		out = append(out, &models.UserStat{UserID: userID, Path: path, Value: value})
	}
	return out, nil
}

func (f *fakeStatsRepo) count(path string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counters[path]
}

// fakeTagRepo keeps tags in memory.
type fakeTagRepo struct {
	mu   sync.Mutex
	tags map[uuid.UUID]*models.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[uuid.UUID]*models.Tag)}
}

func (f *fakeTagRepo) Create(tag *models.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *tag
	f.tags[tag.ID] = &copied
	return nil
}

func (f *fakeTagRepo) GetByID(id, ownerID uuid.UUID) (*models.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tag, ok := f.tags[id]
	if !ok || tag.OwnerID != ownerID {
		return nil, nil
	}
	copied := *tag
	return &copied, nil
}

func (f *fakeTagRepo) Update(tag *models.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *tag
	f.tags[tag.ID] = &copied
	return nil
}

func (f *fakeTagRepo) Delete(id, ownerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tags, id)
	return nil
}

func (f *fakeTagRepo) FindByOwnerID(ownerID uuid.UUID) ([]*models.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Tag
	for _, tag := range f.tags {
		if tag.OwnerID == ownerID {
			copied := *tag
			out = append(out, &copied)
		}
	}
	return out, nil
}

// fakeWS records broadcasts.
type fakeWS struct {
	mu         sync.Mutex
	listPushes []interface{}
	completed  []interface{}
}

func (f *fakeWS) BroadcastToUser(userID uuid.UUID, messageType string, data interface{}) {}
func (f *fakeWS) BroadcastNoteSaving(userID, noteID uuid.UUID)                           {}
func (f *fakeWS) BroadcastNoteSaved(userID uuid.UUID, note interface{})                  {}
func (f *fakeWS) BroadcastNoteDeleted(userID, noteID uuid.UUID)                          {}
func (f *fakeWS) BroadcastListDeleted(userID, listID uuid.UUID)                          {}

func (f *fakeWS) BroadcastListUpdated(userID uuid.UUID, list interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listPushes = append(f.listPushes, list)
}

func (f *fakeWS) BroadcastPomodoroCompleted(userID uuid.UUID, session interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, session)
}

func (f *fakeWS) listPushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listPushes)
}

// fakeSummarizer returns a canned response or error and records prompts.
type fakeSummarizer struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (f *fakeSummarizer) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeSummarizer) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func (f *fakeSummarizer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// fakeNoteRepo keeps notes in memory.
type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[uuid.UUID]*models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]*models.Note)}
}

func (f *fakeNoteRepo) Create(note *models.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNoteRepo) GetByID(id, ownerID uuid.UUID) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, ok := f.notes[id]
	if !ok || note.OwnerID != ownerID {
		return nil, nil
	}
	copied := *note
	return &copied, nil
}

func (f *fakeNoteRepo) Delete(id, ownerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) UpdateFields(id, ownerID uuid.UUID, fields map[string]interface{}) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, ok := f.notes[id]
	if !ok || note.OwnerID != ownerID {
		return nil, nil
	}
	if title, ok := fields["title"].(string); ok {
		note.Title = title
	}
	if content, ok := fields["content"].(string); ok {
		note.Content = content
	}
	copied := *note
	return &copied, nil
}

func (f *fakeNoteRepo) FindByOwnerID(ownerID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Note
	for _, note := range f.notes {
		if note.OwnerID == ownerID {
			copied := *note
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeNoteRepo) SearchNotes(ownerID uuid.UUID, query string, limit, offset int) ([]*models.Note, int64, error) {
	return f.FindByOwnerID(ownerID, limit, offset)
}

// fakePomodoroRepo keeps sessions in memory.
type fakePomodoroRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*models.PomodoroSession
}

func newFakePomodoroRepo() *fakePomodoroRepo {
	return &fakePomodoroRepo{sessions: make(map[uuid.UUID]*models.PomodoroSession)}
}

func (f *fakePomodoroRepo) Create(session *models.PomodoroSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakePomodoroRepo) GetByID(id, userID uuid.UUID) (*models.PomodoroSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok || session.UserID != userID {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakePomodoroRepo) UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return errors.New("session not found")
	}
	if completed, ok := fields["completed"].(bool); ok {
		session.Completed = completed
	}
	if interrupted, ok := fields["interrupted"].(bool); ok {
		session.Interrupted = interrupted
	}
	return nil
}

func (f *fakePomodoroRepo) FindByUserID(userID uuid.UUID, limit, offset int) ([]*models.PomodoroSession, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.PomodoroSession
	for _, session := range f.sessions {
		if session.UserID == userID {
			copied := *session
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePomodoroRepo) FindRunning() ([]*models.PomodoroSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.PomodoroSession
	for _, session := range f.sessions {
		if !session.Completed && !session.Interrupted {
			copied := *session
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakePomodoroRepo) Stats(userID uuid.UUID) (*models.PomodoroStats, error) {
	return &models.PomodoroStats{}, nil
}

// fakeTimer records scheduled and cancelled sessions.
type fakeTimer struct {
	mu        sync.Mutex
	scheduled []uuid.UUID
	cancelled []uuid.UUID
}

var _ SessionTimer = (*fakeTimer)(nil)

func (f *fakeTimer) Schedule(sessionID, userID uuid.UUID, endsAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, sessionID)
}

func (f *fakeTimer) Cancel(sessionID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, sessionID)
	return true
}
