// interfaces/websocket/hub.go
package websocket

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Hub manages all WebSocket connections
type Hub struct {
	// Registered clients
	clients    map[uuid.UUID]*Client
	clientsMux sync.RWMutex

	// User connections mapping (userID -> clientIDs)
	userConnections    map[uuid.UUID][]uuid.UUID
	userConnectionsMux sync.RWMutex

	// Channels
	register   chan *Client
	unregister chan *Client
	broadcast  chan *BroadcastMessage

	// Statistics
	startTime       time.Time
	totalMessages   int64
	messagesSentMux sync.RWMutex
}

// Client represents a WebSocket connection
type Client struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub

	// Liveness fields are touched from two goroutines: the connection's
	// readPump and the hub's sweep ticker.
	aliveMux     sync.Mutex
	isAlive      bool
	lastPingTime time.Time
}

// markAlive records a client ping. Called from the connection goroutine.
func (c *Client) markAlive() {
	c.aliveMux.Lock()
	c.isAlive = true
	c.lastPingTime = time.Now()
	c.aliveMux.Unlock()
}

// expireLiveness clears the liveness flag and reports whether the client
// already missed the previous window. Called from the hub goroutine.
func (c *Client) expireLiveness(window time.Duration) bool {
	c.aliveMux.Lock()
	defer c.aliveMux.Unlock()
	stale := !c.isAlive && time.Since(c.lastPingTime) > window
	c.isAlive = false
	return stale
}

// Message types
type MessageType string

const (
	// Connection management
	TypeConnect MessageType = "connect"
	TypePing    MessageType = "ping"
	TypePong    MessageType = "pong"

	// Note autosave lifecycle
	TypeNoteSaving  MessageType = "note.saving"
	TypeNoteSaved   MessageType = "note.saved"
	TypeNoteDeleted MessageType = "note.deleted"

	// To-do list sync
	TypeListUpdated MessageType = "list.updated"
	TypeListDeleted MessageType = "list.deleted"

	// Pomodoro timer
	TypePomodoroCompleted MessageType = "pomodoro.completed"

	// Errors
	TypeError MessageType = "error"
)

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:         make(map[uuid.UUID]*Client),
		userConnections: make(map[uuid.UUID][]uuid.UUID),
		register:        make(chan *Client),
		unregister:      make(chan *Client),
		broadcast:       make(chan *BroadcastMessage, 256),
		startTime:       time.Now(),
	}
}

// Run processes hub events until the context is cancelled
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("WebSocket Hub: Context cancelled, shutting down")
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-ticker.C:
			h.checkAliveClients()
		}
	}
}

// registerClient registers a new client
func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	h.clients[client.ID] = client
	h.clientsMux.Unlock()

	h.userConnectionsMux.Lock()
	h.userConnections[client.UserID] = append(h.userConnections[client.UserID], client.ID)
	connections := len(h.userConnections[client.UserID])
	h.userConnectionsMux.Unlock()

	log.Printf("WebSocket Hub: client %s registered for user %s (%d connections)",
		client.ID, client.UserID, connections)

	h.sendToClient(client, WSResponse{
		Type:      TypeConnect,
		Data:      map[string]interface{}{"clientId": client.ID},
		Timestamp: time.Now(),
		Success:   true,
	})
}

// unregisterClient removes a client and closes its send channel
func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	if _, ok := h.clients[client.ID]; !ok {
		h.clientsMux.Unlock()
		return
	}
	delete(h.clients, client.ID)
	h.clientsMux.Unlock()

	h.userConnectionsMux.Lock()
	h.removeClientFromSlice(h.userConnections, client.UserID, client.ID)
	h.userConnectionsMux.Unlock()

	close(client.Send)
	log.Printf("WebSocket Hub: client %s unregistered", client.ID)
}

// checkAliveClients drops connections that missed their ping window
func (h *Hub) checkAliveClients() {
	h.clientsMux.RLock()
	var stale []*Client
	for _, client := range h.clients {
		if client.expireLiveness(90 * time.Second) {
			stale = append(stale, client)
		}
	}
	h.clientsMux.RUnlock()

	for _, client := range stale {
		log.Printf("WebSocket Hub: dropping stale client %s", client.ID)
		client.Conn.Close()
		h.unregister <- client
	}
}

// GetStats returns WebSocket statistics
func (h *Hub) GetStats() map[string]interface{} {
	h.clientsMux.RLock()
	totalClients := len(h.clients)
	h.clientsMux.RUnlock()

	h.userConnectionsMux.RLock()
	totalUsers := len(h.userConnections)
	h.userConnectionsMux.RUnlock()

	h.messagesSentMux.RLock()
	messages := h.totalMessages
	h.messagesSentMux.RUnlock()

	return map[string]interface{}{
		"total_connections": totalClients,
		"unique_users":      totalUsers,
		"total_messages":    messages,
		"uptime":            time.Since(h.startTime).String(),
		"started_at":        h.startTime,
	}
}

// IncrementMessageCount increments total message count (thread-safe)
func (h *Hub) IncrementMessageCount() {
	h.messagesSentMux.Lock()
	h.totalMessages++
	h.messagesSentMux.Unlock()
}

func (h *Hub) removeClientFromSlice(m map[uuid.UUID][]uuid.UUID, userID, clientID uuid.UUID) {
	ids := m[userID]
	for i, id := range ids {
		if id == clientID {
			m[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(m[userID]) == 0 {
		delete(m, userID)
	}
}
