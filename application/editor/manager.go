// application/editor/manager.go
package editor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/application/writequeue"
	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/port"
)

// sessionIdleTTL - idle editor sessions are evicted after this long. A
// pending flush still fires before eviction because eviction closes only
// idle sessions, and a session with a pending flush was active within the
// debounce delay.
const sessionIdleTTL = 30 * time.Minute

// Loader fetches the persisted note used to seed a session baseline.
type Loader interface {
	GetNote(id, ownerID uuid.UUID) (*models.Note, error)
}

// Manager is the editor session registry: one lazily-created session per
// (user, note). Switching notes closes the previous session, which cancels
// its pending debounce timer.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	store Store
	load  Loader
	ws    port.WebSocketPort
	queue *writequeue.Queue
	delay time.Duration
}

// NewManager creates the registry.
func NewManager(store Store, load Loader, ws port.WebSocketPort, queue *writequeue.Queue, delay time.Duration) *Manager {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		load:     load,
		ws:       ws,
		queue:    queue,
		delay:    delay,
	}
}

func sessionKey(ownerID uuid.UUID, noteID *uuid.UUID) string {
	if noteID == nil {
		return ownerID.String() + ":new"
	}
	return ownerID.String() + ":" + noteID.String()
}

// Session returns the session for the pair, creating it from the persisted
// note on first use. noteID nil opens a fresh, never-persisted note.
func (m *Manager) Session(ownerID uuid.UUID, noteID *uuid.UUID) (*Session, error) {
	key := sessionKey(ownerID, noteID)

	m.mu.Lock()
	if s, ok := m.sessions[key]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	var baselineTitle, baselineContent string
	if noteID != nil {
		note, err := m.load.GetNote(*noteID, ownerID)
		if err != nil {
			return nil, err
		}
		baselineTitle, baselineContent = note.Title, note.Content
	}

	ctrl := NewAutosaveController(ownerID, noteID, baselineTitle, baselineContent, m.store, m.queue,
		WithDelay(m.delay),
		WithSavingHook(func(id *uuid.UUID) {
			if m.ws == nil {
				return
			}
			if id != nil {
				m.ws.BroadcastNoteSaving(ownerID, *id)
			}
		}),
		WithSavedHook(func(note *models.Note) {
			m.adopt(ownerID, key, note)
			if m.ws != nil {
				m.ws.BroadcastNoteSaved(ownerID, note)
			}
		}),
	)
	s := NewSession(ownerID, baselineTitle, baselineContent, ctrl)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[key]; ok {
		return existing, nil
	}
	m.sessions[key] = s
	return s, nil
}

// adopt re-keys a new-note session once the first flush assigns an identity,
// so the next draft request for that id finds the same session.
func (m *Manager) adopt(ownerID uuid.UUID, oldKey string, note *models.Note) {
	newKey := sessionKey(ownerID, &note.ID)
	if newKey == oldKey {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[oldKey]; ok {
		delete(m.sessions, oldKey)
		m.sessions[newKey] = s
	}
}

// Close tears down the session for the pair, cancelling any pending flush.
// Called when the client switches away from a note.
func (m *Manager) Close(ownerID uuid.UUID, noteID *uuid.UUID) {
	key := sessionKey(ownerID, noteID)

	m.mu.Lock()
	s, ok := m.sessions[key]
	if ok {
		delete(m.sessions, key)
	}
	m.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Run sweeps idle sessions until the context is cancelled.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *Manager) evictIdle() {
	cutoff := time.Now().Add(-sessionIdleTTL)
	var stale []*Session

	m.mu.Lock()
	for key, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, key)
			stale = append(stale, s)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	if len(stale) > 0 {
		log.Printf("[EditorSessions] evicted %d idle sessions", len(stale))
	}
}

// Count reports active sessions, for the health endpoint.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
