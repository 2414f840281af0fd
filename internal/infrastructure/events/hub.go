package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"ludomarket/internal/domain/entity"
	"ludomarket/pkg/logger"
)

// Client is one connected event observer.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans domain events out to connected observers. Events are delivered
// in publish order; a slow observer is dropped rather than blocking the
// publisher, since events are fire-and-forget.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Start runs the hub loop until ctx is cancelled.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.ID] = client
				h.mutex.Unlock()
				logger.Debug("Event observer connected: %s", client.ID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client.ID]; ok {
					delete(h.clients, client.ID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Event observer disconnected: %s", client.ID)

			case message := <-h.broadcast:
				h.mutex.Lock()
				for id, client := range h.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(h.clients, id)
					}
				}
				h.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Publish implements the usecase EventBus.
func (h *Hub) Publish(event entity.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.LogEventError(event.Type, err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		logger.LogEventError(event.Type, nil)
	}
}

// WritePump drains the client's send queue onto the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// ReadPump discards inbound frames; the feed is one-way. It unregisters
// the client when the connection drops.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Event observer read error: %v", err)
			}
			return
		}
	}
}
