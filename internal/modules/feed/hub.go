package feed

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps a live connection with a write mutex; gorilla/websocket
// allows at most one concurrent writer per connection.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// Hub tracks one live connection per user. A second connection from the
// same user replaces the first.
type Hub struct {
	clients map[int64]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	old := h.clients[userID]
	h.clients[userID] = &client{conn: conn}
	h.mutex.Unlock()

	if old != nil && old.conn != nil {
		_ = old.conn.Close()
	}
}

// Unregister drops the user's entry only while it still holds conn.
// The read goroutine of a replaced connection calls this after
// Register already swapped in the new one; that stale cleanup must
// not tear down the new connection.
func (h *Hub) Unregister(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	cl, exists := h.clients[userID]
	if !exists || cl.conn != conn {
		return
	}
	_ = cl.conn.Close()
	delete(h.clients, userID)
}

// SendToUser delivers the event if the user is connected. A write
// failure drops the connection.
func (h *Hub) SendToUser(userID int64, event interface{}) bool {
	h.mutex.RLock()
	cl, exists := h.clients[userID]
	h.mutex.RUnlock()

	if !exists || cl.conn == nil {
		return false
	}

	cl.writeMu.Lock()
	err := cl.conn.WriteJSON(event)
	cl.writeMu.Unlock()

	if err != nil {
		h.Unregister(userID, cl.conn)
		return false
	}

	return true
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.clients[userID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, cl := range h.clients {
		if cl.conn != nil {
			_ = cl.conn.Close()
		}
		delete(h.clients, userID)
	}
}
