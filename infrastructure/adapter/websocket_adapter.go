// infrastructure/adapter/websocket_adapter.go
package adapter

import (
	"github.com/google/uuid"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/interfaces/websocket"
)

// WebSocketAdapter bridges the hub to the WebSocketPort interface
type WebSocketAdapter struct {
	hub *websocket.Hub
}

// NewWebSocketAdapter creates a WebSocketAdapter over a hub
func NewWebSocketAdapter(hub *websocket.Hub) port.WebSocketPort {
	return &WebSocketAdapter{
		hub: hub,
	}
}

// BroadcastToUser sends a message to every connection of a user
func (a *WebSocketAdapter) BroadcastToUser(userID uuid.UUID, messageType string, data interface{}) {
	a.hub.BroadcastToUser(userID, websocket.MessageType(messageType), data)
}

// BroadcastNoteSaving signals that an autosave flush has started
func (a *WebSocketAdapter) BroadcastNoteSaving(userID, noteID uuid.UUID) {
	a.hub.BroadcastToUser(userID, websocket.TypeNoteSaving, map[string]interface{}{
		"noteId": noteID,
	})
}

// BroadcastNoteSaved delivers the persisted note after a flush lands
func (a *WebSocketAdapter) BroadcastNoteSaved(userID uuid.UUID, note interface{}) {
	a.hub.BroadcastToUser(userID, websocket.TypeNoteSaved, note)
}

// BroadcastNoteDeleted notifies other devices that a note is gone
func (a *WebSocketAdapter) BroadcastNoteDeleted(userID, noteID uuid.UUID) {
	a.hub.BroadcastToUser(userID, websocket.TypeNoteDeleted, map[string]interface{}{
		"noteId": noteID,
	})
}

// BroadcastListUpdated delivers the list after a mutation commits
func (a *WebSocketAdapter) BroadcastListUpdated(userID uuid.UUID, list interface{}) {
	a.hub.BroadcastToUser(userID, websocket.TypeListUpdated, list)
}

// BroadcastListDeleted notifies other devices that a list is gone
func (a *WebSocketAdapter) BroadcastListDeleted(userID, listID uuid.UUID) {
	a.hub.BroadcastToUser(userID, websocket.TypeListDeleted, map[string]interface{}{
		"listId": listID,
	})
}

// BroadcastPomodoroCompleted notifies the user that a timer finished
func (a *WebSocketAdapter) BroadcastPomodoroCompleted(userID uuid.UUID, session interface{}) {
	a.hub.BroadcastToUser(userID, websocket.TypePomodoroCompleted, session)
}
