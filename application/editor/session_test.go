// application/editor/session_test.go
package editor

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tszwong/notizen-api/application/writequeue"
)

func newTestSession(store *fakeStore, title, content string) *Session {
	ownerID := uuid.New()
	autosave := NewAutosaveController(ownerID, nil, title, content, store, writequeue.New(), WithDelay(testDelay))
	return NewSession(ownerID, title, content, autosave)
}

func TestRestoreDecision(t *testing.T) {
	saved := &Selection{Anchor: 4, Focus: 9}

	tests := []struct {
		name     string
		source   ChangeSource
		hasFocus bool
		saved    *Selection
		restore  bool
	}{
		{"programmatic change with focus and saved selection", SourceProgrammatic, true, saved, true},
		{"programmatic change without focus", SourceProgrammatic, false, saved, false},
		{"programmatic change with nothing saved", SourceProgrammatic, true, nil, false},
		{"user keystrokes never restore", SourceUser, true, saved, false},
		{"user keystrokes without focus", SourceUser, false, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, restore := RestoreDecision(tt.source, tt.hasFocus, tt.saved)
			assert.Equal(t, tt.restore, restore)
			if tt.restore {
				assert.Equal(t, *tt.saved, sel)
			}
		})
	}
}

func TestInjectCapturesSelectionForRestore(t *testing.T) {
	s := newTestSession(&fakeStore{}, "t", "before")

	live := &Selection{Anchor: 2, Focus: 6}
	s.Inject("after", live)

	sel, restore := s.Restore(true)
	require.True(t, restore)
	assert.Equal(t, *live, sel)

	_, restore = s.Restore(false)
	assert.False(t, restore, "no restoration when the editor lost focus")
}

func TestUserEditSuppressesRestore(t *testing.T) {
	s := newTestSession(&fakeStore{}, "t", "before")

	s.Inject("injected", &Selection{Anchor: 1, Focus: 1})
	s.UserEdit("t", "typed over it")

	_, restore := s.Restore(true)
	assert.False(t, restore, "native cursor handling wins after keystrokes")
}

func TestSpeechTranscriptLandsOnSnapshot(t *testing.T) {
	s := newTestSession(&fakeStore{}, "t", "notes so far. ")

	s.StartSpeech()
	s.SpeechTranscript("hello", nil)
	s.SpeechTranscript("hello world", nil)

	_, content, _ := s.State()
	assert.Equal(t, "notes so far. hello world", content,
		"cumulative chunks replace each other on the snapshot, they do not stack")
}

func TestSpeechChunkWithoutCycleIsDropped(t *testing.T) {
	s := newTestSession(&fakeStore{}, "t", "untouched")

	s.SpeechTranscript("stray chunk", nil)

	_, content, _ := s.State()
	assert.Equal(t, "untouched", content)
}

func TestStopSpeechEndsTheCycle(t *testing.T) {
	s := newTestSession(&fakeStore{}, "t", "base. ")

	s.StartSpeech()
	s.SpeechTranscript("one", nil)
	s.StopSpeech()
	s.SpeechTranscript("two", nil)

	_, content, _ := s.State()
	assert.Equal(t, "base. one", content, "chunks after stop are dropped")
}

func TestRestartSpeechRebasesOnCurrentContent(t *testing.T) {
	s := newTestSession(&fakeStore{}, "t", "base. ")

	s.StartSpeech()
	s.SpeechTranscript("first take", nil)
	s.StopSpeech()

	s.StartSpeech()
	s.SpeechTranscript("second take", nil)

	_, content, _ := s.State()
	assert.Equal(t, "base. first takesecond take", content)
}

func TestAppendProgrammaticFeedsAutosave(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store, "t", "note body")

	got := s.AppendProgrammatic("<br>Summary:<br><ul><li>x</li></ul>", nil)
	assert.Equal(t, "note body<br>Summary:<br><ul><li>x</li></ul>", got)

	require.Eventually(t, func() bool {
		return store.saveCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, got, store.lastSave().Content)
}
