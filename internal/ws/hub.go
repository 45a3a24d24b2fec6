package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	EventQuestionCreated = "question.created"
	EventQuestionDeleted = "question.deleted"
)

// AllCategories is the subscription key for clients that follow every category.
const AllCategories uint = 0

const (
	writeWait  = 10 * time.Second
	sendBuffer = 32
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Conn is the subset of *websocket.Conn the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// subscriber owns the only writer goroutine for its connection.
type subscriber struct {
	conn Conn
	send chan []byte
}

// Hub fans question events out to websocket subscribers keyed by category id.
// Publish never waits on a connection: each subscriber has a buffered queue
// drained by its own goroutine, and a subscriber whose queue is full is dropped.
type Hub struct {
	mu     sync.Mutex
	topics map[uint]map[Conn]*subscriber
	log    *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		topics: make(map[uint]map[Conn]*subscriber),
		log:    log,
	}
}

func (h *Hub) Subscribe(categoryID uint, conn Conn) {
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if h.topics[categoryID] == nil {
		h.topics[categoryID] = make(map[Conn]*subscriber)
	}
	h.topics[categoryID][conn] = sub
	total := len(h.topics[categoryID])
	h.mu.Unlock()

	h.log.Debug("ws: subscriber added", zap.Uint("category", categoryID), zap.Int("total", total))
	go h.writeLoop(categoryID, sub)
}

func (h *Hub) Unsubscribe(categoryID uint, conn Conn) {
	h.mu.Lock()
	removed := h.removeLocked(categoryID, conn)
	h.mu.Unlock()

	if removed {
		h.log.Debug("ws: subscriber removed", zap.Uint("category", categoryID))
	}
}

// Subscribers reports how many connections follow categoryID.
func (h *Hub) Subscribers(categoryID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics[categoryID])
}

// Publish queues msg for the subscribers of categoryID and for the
// all-categories subscribers.
func (h *Hub) Publish(categoryID uint, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("ws: marshal error", zap.Error(err))
		return
	}

	keys := []uint{AllCategories}
	if categoryID != AllCategories {
		keys = append(keys, categoryID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, key := range keys {
		for conn, sub := range h.topics[key] {
			select {
			case sub.send <- data:
			default:
				h.log.Warn("ws: subscriber too slow, dropping", zap.Uint("category", key))
				h.removeLocked(key, conn)
			}
		}
	}
}

func (h *Hub) writeLoop(categoryID uint, sub *subscriber) {
	for data := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warn("ws: write error", zap.Uint("category", categoryID), zap.Error(err))
			h.Unsubscribe(categoryID, sub.conn)
			return
		}
	}
}

// removeLocked drops conn from the topic and closes it. It reports false when
// conn was already gone, so every connection is closed exactly once.
func (h *Hub) removeLocked(categoryID uint, conn Conn) bool {
	conns := h.topics[categoryID]
	sub, ok := conns[conn]
	if !ok {
		return false
	}

	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.topics, categoryID)
	}
	close(sub.send)
	_ = conn.Close()
	return true
}
