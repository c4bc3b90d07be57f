package ws

import (
	"context"
	"log"
	"sync"
)

// Hub fans messages out to every connected client.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

// Run serves the hub until ctx is done, then drops every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mutex.Unlock()
			h.logf("[WS] hub stopped")
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logf("[WS] connected total_clients=%d", total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logf("[WS] disconnected total_clients=%d", total)

		case message := <-h.broadcast:
			h.mutex.RLock()
			clientsSnapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				clientsSnapshot = append(clientsSnapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range clientsSnapshot {
				select {
				case client.send <- message:
				default:
					h.Unregister(client)
				}
			}
			h.logf("[WS] broadcast clients=%d", len(clientsSnapshot))
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	default:
		h.logf("[WS] unregister dropped reason=buffer_full")
	}
}

func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.logf("[WS] broadcast dropped reason=buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
