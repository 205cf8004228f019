package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

type unicastMessage struct {
	userID  uuid.UUID
	message []byte
}

// Hub maintains the set of connected clients and pushes per-user events to
// them. The worker uses it to tell an uploader that thumbnails are ready.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Unicast messages
	unicast chan unicastMessage

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Channel to signal termination
	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		unicast:    make(chan unicastMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case msg := <-h.unicast:
			for client := range h.clients {
				if client.userID != msg.userID {
					continue
				}
				select {
				case client.send <- msg.message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		case <-h.stop:
			log.Println("[Events Hub] stopping")
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// SendToUser pushes a message to every connection the user currently holds.
func (h *Hub) SendToUser(userID uuid.UUID, message []byte) {
	select {
	case h.unicast <- unicastMessage{userID: userID, message: message}:
	case <-h.stop:
	}
}

// ThumbnailsReady implements the worker's Notifier interface.
func (h *Hub) ThumbnailsReady(userID, fileID uuid.UUID) {
	payload, err := json.Marshal(map[string]string{
		"event":  "thumbnails_ready",
		"fileId": fileID.String(),
	})
	if err != nil {
		return
	}
	h.SendToUser(userID, payload)
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}
