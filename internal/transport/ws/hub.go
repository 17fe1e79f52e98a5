package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Dashboard message types
const (
	MsgResultScored       MessageType = "result_scored"
	MsgDashboardConnected MessageType = "dashboard_connected"
	MsgError              MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages dashboard WebSocket connections. A company may keep several
// dashboards open at once; every one of them receives the company's events.
type Hub struct {
	// Company -> open dashboard connections
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a dashboard WebSocket connection
type Connection struct {
	CompanyID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message addressed to one company's dashboards
type BroadcastMessage struct {
	CompanyID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.CompanyID] == nil {
				h.conns[conn.CompanyID] = make(map[*Connection]bool)
			}
			h.conns[conn.CompanyID][conn] = true
			log.Printf("Dashboard connected for company %s", conn.CompanyID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.conns[conn.CompanyID]; ok && conns[conn] {
				delete(conns, conn)
				close(conn.Send)
				if len(conns) == 0 {
					delete(h.conns, conn.CompanyID)
				}
				log.Printf("Dashboard disconnected for company %s", conn.CompanyID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.CompanyID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToCompany sends a message to every open dashboard of a company
// (implements service.Broadcaster)
func (h *Hub) BroadcastToCompany(companyID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		CompanyID: companyID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
