// interfaces/websocket/broadcast.go
package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// WSResponse is the envelope sent to clients
type WSResponse struct {
	Type      MessageType `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Success   bool        `json:"success"`
	Error     string      `json:"error,omitempty"`
}

// BroadcastMessage targets one or more users
type BroadcastMessage struct {
	Type    MessageType
	Data    interface{}
	UserIDs []uuid.UUID
}

// BroadcastToUser queues a message for every connection of a user
func (h *Hub) BroadcastToUser(userID uuid.UUID, msgType MessageType, data interface{}) {
	h.NotifyBroadcast(&BroadcastMessage{
		Type:    msgType,
		Data:    data,
		UserIDs: []uuid.UUID{userID},
	})
}

// NotifyBroadcast queues a broadcast without blocking the caller
func (h *Hub) NotifyBroadcast(msg *BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("WebSocket Hub: broadcast channel full, dropping %s", msg.Type)
	}
}

// broadcastMessage sends a message to specified clients
func (h *Hub) broadcastMessage(msg *BroadcastMessage) {
	data, err := json.Marshal(WSResponse{
		Type:      msg.Type,
		Data:      msg.Data,
		Timestamp: time.Now(),
		Success:   true,
	})
	if err != nil {
		return
	}

	for _, userID := range msg.UserIDs {
		h.sendToUser(userID, data)
	}
	h.IncrementMessageCount()
}

// sendToUser sends a message to all connections of a user
func (h *Hub) sendToUser(userID uuid.UUID, data []byte) {
	h.userConnectionsMux.RLock()
	clientIDs := make([]uuid.UUID, len(h.userConnections[userID]))
	copy(clientIDs, h.userConnections[userID])
	h.userConnectionsMux.RUnlock()

	for _, clientID := range clientIDs {
		h.clientsMux.RLock()
		client, ok := h.clients[clientID]
		h.clientsMux.RUnlock()

		if ok {
			select {
			case client.Send <- data:
			default:
				// Client's send channel is full, close it
				go func() {
					h.unregister <- client
				}()
			}
		}
	}
}

// sendToClient marshals and sends a response to a single client
func (h *Hub) sendToClient(client *Client, response WSResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	select {
	case client.Send <- data:
	default:
	}
}
