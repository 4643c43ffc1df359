// domain/port/websocket_port.go
package port

import "github.com/google/uuid"

// WebSocketPort pushes events to a user's connected devices.
type WebSocketPort interface {
	// Core WebSocket method
	BroadcastToUser(userID uuid.UUID, messageType string, data interface{})

	// Autosave lifecycle: saving indicator on, then the timestamp
	// read-back once the flush lands.
	BroadcastNoteSaving(userID, noteID uuid.UUID)
	BroadcastNoteSaved(userID uuid.UUID, note interface{})
	BroadcastNoteDeleted(userID, noteID uuid.UUID)

	// List mutations (multi-device sync)
	BroadcastListUpdated(userID uuid.UUID, list interface{})
	BroadcastListDeleted(userID, listID uuid.UUID)

	// Pomodoro timer completion
	BroadcastPomodoroCompleted(userID uuid.UUID, session interface{})
}
