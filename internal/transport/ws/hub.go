package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Watcher message types
const (
	MsgResponseReceived MessageType = "response_received"
	MsgSurveyUpdated    MessageType = "survey_updated"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages dashboard watcher connections per survey. A survey can have
// several watchers (the owner's dashboard open in multiple tabs).
type Hub struct {
	// Survey -> connection ID -> connection
	watchers map[string]map[string]*Connection

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	SurveyID string
	ConnID   string
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast to a survey's watchers
type BroadcastMessage struct {
	SurveyID string
	Message  *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		watchers:   make(map[string]map[string]*Connection),
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
			if h.watchers[conn.SurveyID] == nil {
				h.watchers[conn.SurveyID] = make(map[string]*Connection)
			}
			h.watchers[conn.SurveyID][conn.ConnID] = conn
			log.Printf("Watcher %s connected to survey %s", conn.ConnID, conn.SurveyID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.watchers[conn.SurveyID]; ok {
				if existing, ok := conns[conn.ConnID]; ok && existing == conn {
					delete(conns, conn.ConnID)
					close(conn.Send)
					log.Printf("Watcher %s disconnected from survey %s", conn.ConnID, conn.SurveyID)
				}
				if len(conns) == 0 {
					delete(h.watchers, conn.SurveyID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for _, conn := range h.watchers[msg.SurveyID] {
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

// BroadcastToWatchers sends a message to every watcher of a survey
// (implements service.Broadcaster)
func (h *Hub) BroadcastToWatchers(surveyID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SurveyID: surveyID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
