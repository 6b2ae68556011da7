package ws

import (
	"encoding/json"
	"log"
)

// Hub manages all active WebSocket clients and routes events to them.
type Hub struct {
	// clients maps username → client.
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	direct     chan *directMsg
}

type directMsg struct {
	username string
	data     []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		direct:     make(chan *directMsg, 256),
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.username] = client
			log.Printf("ws hub: %s connected (%d total)", client.username, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client.username]; ok {
				delete(h.clients, client.username)
				close(client.send)
				close(client.done)
				log.Printf("ws hub: %s disconnected (%d total)", client.username, len(h.clients))
			}

		case msg := <-h.direct:
			client, ok := h.clients[msg.username]
			if !ok {
				continue
			}
			select {
			case client.send <- msg.data:
			default:
				// Client buffer full - disconnect
				delete(h.clients, client.username)
				close(client.send)
				close(client.done)
			}
		}
	}
}

// SendToUser delivers an event to one user, if connected.
func (h *Hub) SendToUser(username string, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	h.direct <- &directMsg{username: username, data: data}
}
