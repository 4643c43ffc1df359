// interfaces/websocket/handlers.go
package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const writeWait = 10 * time.Second

// WSRequest is the envelope received from clients
type WSRequest struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// RegisterWebSocketRoutes mounts the WebSocket endpoint behind auth middleware
func RegisterWebSocketRoutes(app *fiber.App, hub *Hub, protected fiber.Handler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", protected, websocket.New(func(conn *websocket.Conn) {
		userIDStr, _ := conn.Locals("userID").(string)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			conn.Close()
			return
		}

		client := &Client{
			ID:     uuid.New(),
			UserID: userID,
			Conn:   conn,
			Send:   make(chan []byte, 64),
			Hub:    hub,
		}
		client.markAlive()

		hub.register <- client

		go client.writePump()
		client.readPump()
	}))
}

// readPump reads client frames until the connection drops.
// Runs on the connection's goroutine; exiting unregisters the client.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket: read error for client %s: %v", c.ID, err)
			}
			return
		}

		var req WSRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			continue
		}

		switch req.Type {
		case TypePing:
			c.markAlive()
			c.Hub.sendToClient(c, WSResponse{
				Type:      TypePong,
				Timestamp: time.Now(),
				Success:   true,
			})
		default:
			// Server push only; unknown client messages are ignored.
		}
	}
}

// writePump drains the send channel onto the socket
func (c *Client) writePump() {
	defer c.Conn.Close()

	for data := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}

	// Hub closed the channel
	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
