// application/editor/autosave.go
package editor

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/application/writequeue"
	"github.com/tszwong/notizen-api/domain/models"
)

// DefaultDebounceDelay - quiet period before a dirty note is flushed.
const DefaultDebounceDelay = 1500 * time.Millisecond

// Store is the persistence surface the controller flushes to. A nil id
// creates the note and returns its adopted identity; otherwise only the
// title/content columns are updated. The returned note carries the
// authoritative server timestamps.
type Store interface {
	SaveDraft(id *uuid.UUID, ownerID uuid.UUID, title, content string) (*models.Note, error)
}

// AutosaveController watches the (title, content) pair of one note and
// flushes it after a quiet period. Trailing-edge debounce with no maximum
// wait: every change cancels and re-arms the timer, so a burst of edits
// coalesces into a single write holding the state after the last edit.
type AutosaveController struct {
	mu sync.Mutex

	ownerID uuid.UUID
	noteID  *uuid.UUID
	store   Store
	queue   *writequeue.Queue
	delay   time.Duration

	// lane is fixed for the controller's lifetime. A session that starts
	// on an unsaved note keeps its lane across identity adoption, so the
	// create flush and every later flush serialize on the same lane.
	lane string

	// last successfully persisted pair; the equality short-circuit
	// compares against this baseline
	lastSavedTitle   string
	lastSavedContent string

	// latest observed pair, what the next fire will write
	title   string
	content string

	timer      *time.Timer
	generation uint64 // guards the Stop/fire race and note switches
	saving     bool

	onSaving func(noteID *uuid.UUID)
	onSaved  func(note *models.Note)
}

// AutosaveOption configures an AutosaveController.
type AutosaveOption func(*AutosaveController)

// WithDelay overrides the debounce delay.
func WithDelay(d time.Duration) AutosaveOption {
	return func(c *AutosaveController) { c.delay = d }
}

// WithSavingHook registers a callback fired when the saving indicator
// turns on.
func WithSavingHook(fn func(noteID *uuid.UUID)) AutosaveOption {
	return func(c *AutosaveController) { c.onSaving = fn }
}

// WithSavedHook registers a callback fired after a successful flush, with
// the authoritative timestamps read back from the store.
func WithSavedHook(fn func(note *models.Note)) AutosaveOption {
	return func(c *AutosaveController) { c.onSaved = fn }
}

// NewAutosaveController creates a controller for one note. noteID is nil for
// a never-persisted note; baseline is the last persisted pair (empty for a
// new note).
func NewAutosaveController(ownerID uuid.UUID, noteID *uuid.UUID, baselineTitle, baselineContent string, store Store, queue *writequeue.Queue, opts ...AutosaveOption) *AutosaveController {
	c := &AutosaveController{
		ownerID:          ownerID,
		noteID:           cloneID(noteID),
		store:            store,
		queue:            queue,
		delay:            DefaultDebounceDelay,
		lastSavedTitle:   baselineTitle,
		lastSavedContent: baselineContent,
		title:            baselineTitle,
		content:          baselineContent,
	}
	if noteID != nil {
		c.lane = "note:" + noteID.String()
	} else {
		c.lane = "note:new:" + ownerID.String() + ":" + uuid.NewString()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observe records the current (title, content) pair. A pair equal to the
// persisted baseline cancels any pending flush and clears the indicator;
// anything else marks the note dirty and re-arms the debounce timer.
func (c *AutosaveController) Observe(title, content string) {
	c.mu.Lock()
	c.title = title
	c.content = content

	if title == c.lastSavedTitle && content == c.lastSavedContent {
		c.cancelLocked()
		c.saving = false
		c.mu.Unlock()
		return
	}

	c.saving = true
	c.cancelLocked()
	c.generation++
	gen := c.generation
	c.timer = time.AfterFunc(c.delay, func() { c.fire(gen) })
	onSaving := c.onSaving
	noteID := cloneID(c.noteID)
	c.mu.Unlock()

	if onSaving != nil {
		onSaving(noteID)
	}
}

// fire flushes the latest observed pair unless the arming generation has
// been superseded (newer edit, note switch, or Close).
func (c *AutosaveController) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	title, content := c.title, c.content
	c.mu.Unlock()

	// Flushes for one note serialize through the write queue: a slow
	// earlier flush cannot land after a faster later one.
	c.queue.Enqueue(c.lane, func() error {
		return c.flush(gen, title, content)
	})
}

func (c *AutosaveController) flush(gen uint64, title, content string) error {
	// The identity is read only after the lane is acquired. A flush queued
	// behind an in-flight create sees the adopted id, never a stale nil.
	c.mu.Lock()
	noteID := cloneID(c.noteID)
	c.mu.Unlock()

	note, err := c.store.SaveDraft(noteID, c.ownerID, title, content)

	c.mu.Lock()
	if err != nil {
		// Swallowed: the indicator clears and the next edit re-arms the
		// debounce with the latest content. No automatic retry of the
		// same payload.
		if gen == c.generation {
			c.saving = false
		}
		c.mu.Unlock()
		log.Printf("[Autosave] flush failed for owner %s: %v", c.ownerID, err)
		return err
	}

	if c.noteID == nil {
		// Identity adoption: every later flush targets this id, a second
		// create never happens.
		adopted := note.ID
		c.noteID = &adopted
	}
	c.lastSavedTitle = title
	c.lastSavedContent = content
	if gen == c.generation {
		c.saving = false
	}
	onSaved := c.onSaved
	c.mu.Unlock()

	if onSaved != nil {
		onSaved(note)
	}
	return nil
}

// Flush forces an immediate write of the dirty pair, bypassing the timer.
// Used by the explicit save endpoint; a clean note is a no-op.
func (c *AutosaveController) Flush() (*models.Note, error) {
	c.mu.Lock()
	if c.title == c.lastSavedTitle && c.content == c.lastSavedContent {
		c.mu.Unlock()
		return nil, nil
	}
	c.cancelLocked()
	c.generation++
	gen := c.generation
	title, content := c.title, c.content
	c.mu.Unlock()

	var flushed *models.Note
	err := c.queue.Do(c.lane, func() error {
		c.mu.Lock()
		noteID := cloneID(c.noteID)
		c.mu.Unlock()

		note, err := c.store.SaveDraft(noteID, c.ownerID, title, content)
		if err != nil {
			return err
		}
		flushed = note
		return nil
	})

	c.mu.Lock()
	if err == nil {
		if c.noteID == nil {
			adopted := flushed.ID
			c.noteID = &adopted
		}
		c.lastSavedTitle = title
		c.lastSavedContent = content
	}
	if gen == c.generation {
		c.saving = false
	}
	onSaved := c.onSaved
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if onSaved != nil {
		onSaved(flushed)
	}
	return flushed, nil
}

// Close cancels any pending flush. Called on note switch so a stale write
// cannot land on the wrong note after navigation.
func (c *AutosaveController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++ // invalidates a timer that already fired but not flushed
	c.cancelLocked()
	c.saving = false
}

// Saving reports whether the saving indicator is on.
func (c *AutosaveController) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// NoteID returns the persisted identity, nil before the first flush.
func (c *AutosaveController) NoteID() *uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneID(c.noteID)
}

// Dirty reports whether the observed pair differs from the baseline.
func (c *AutosaveController) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title != c.lastSavedTitle || c.content != c.lastSavedContent
}

func (c *AutosaveController) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
