// application/editor/session.go
package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the live editor state for one (user, note) pair: the
// selection-preserving merge state machine, the speech-transcript
// accumulator, and the autosave controller underneath. Content can be
// mutated by direct keystrokes, speech-to-text transcripts, or AI
// injections; only the programmatic kinds need cursor preservation, the
// surface handles its own cursor for keystrokes.
type Session struct {
	mu sync.Mutex

	ownerID  uuid.UUID
	autosave *AutosaveController

	title   string
	content string

	lastChangeSource ChangeSource
	savedSelection   *Selection

	// speechBase is the content snapshot taken once per start/stop cycle.
	// Cumulative transcript chunks land on this snapshot, never on whatever
	// the content happens to be when a chunk arrives.
	speechBase   *string
	lastActivity time.Time
}

// NewSession creates a session over an autosave controller, seeded with the
// persisted state.
func NewSession(ownerID uuid.UUID, title, content string, autosave *AutosaveController) *Session {
	return &Session{
		ownerID:          ownerID,
		autosave:         autosave,
		title:            title,
		content:          content,
		lastChangeSource: SourceUser,
		lastActivity:     time.Now(),
	}
}

// UserEdit applies a direct-keystroke change. The surface manages its own
// cursor natively, so this transition suppresses any pending restoration.
func (s *Session) UserEdit(title, content string) {
	s.mu.Lock()
	s.title = title
	s.content = content
	s.lastChangeSource = SourceUser
	s.lastActivity = time.Now()
	s.mu.Unlock()

	s.autosave.Observe(title, content)
}

// Inject replaces the content programmatically. The live selection is
// captured before the replacement unless the most recent change was
// user-originated keystrokes still being handled natively.
func (s *Session) Inject(content string, live *Selection) {
	s.mu.Lock()
	s.lastChangeSource = SourceProgrammatic
	if live != nil {
		sel := *live
		s.savedSelection = &sel
	}
	s.content = content
	title := s.title
	s.lastActivity = time.Now()
	s.mu.Unlock()

	s.autosave.Observe(title, content)
}

// AppendProgrammatic appends text to the current content through the
// injection path. Used for AI summary insertion.
func (s *Session) AppendProgrammatic(text string, live *Selection) string {
	s.mu.Lock()
	content := s.content + text
	s.mu.Unlock()

	s.Inject(content, live)
	return content
}

// StartSpeech begins a transcript-accumulation cycle, snapshotting the
// content at the moment capture starts. Starting again mid-cycle re-bases
// on the current content.
func (s *Session) StartSpeech() {
	s.mu.Lock()
	defer s.mu.Unlock()
	base := s.content
	s.speechBase = &base
}

// SpeechTranscript applies a cumulative transcript chunk onto the capture
// snapshot. Chunks arriving with no active cycle are dropped.
func (s *Session) SpeechTranscript(cumulative string, live *Selection) {
	s.mu.Lock()
	if s.speechBase == nil {
		s.mu.Unlock()
		return
	}
	content := *s.speechBase + cumulative
	s.mu.Unlock()

	s.Inject(content, live)
}

// StopSpeech ends the cycle and discards the snapshot.
func (s *Session) StopSpeech() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speechBase = nil
}

// Restore evaluates the selection-restore decision for the client after a
// re-render.
func (s *Session) Restore(hasFocus bool) (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RestoreDecision(s.lastChangeSource, hasFocus, s.savedSelection)
}

// State returns the live pair and the origin of its last change.
func (s *Session) State() (title, content string, source ChangeSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title, s.content, s.lastChangeSource
}

// Autosave exposes the controller for flush/saving queries.
func (s *Session) Autosave() *AutosaveController {
	return s.autosave
}

// Close cancels any pending flush. Called on note switch.
func (s *Session) Close() {
	s.autosave.Close()
}

// idleSince reports the last mutation time, for registry eviction.
func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}
