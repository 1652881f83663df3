package ws

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// client pairs a connection with the authenticated user it belongs to.
// An empty userID means the connection only receives broadcasts.
type client struct {
	conn   *websocket.Conn
	userID string
}

// Hub fans realtime events out to connected POS and ERP screens. There is
// no replay: events sent while a client is disconnected are simply lost.
type Hub struct {
	clients    map[*websocket.Conn]*client
	register   chan *client
	unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*client),
		register:   make(chan *client),
		unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// Register attaches a connection for the given user id
func (h *Hub) Register(conn *websocket.Conn, userID string) {
	h.register <- &client{conn: conn, userID: userID}
}

// Unregister detaches and closes a connection
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// SendToUsers delivers a message to every connection owned by the given
// user ids. Unknown ids are ignored.
func (h *Hub) SendToUsers(userIDs []string, message []byte) {
	targets := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		targets[id] = true
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn, c := range h.clients {
		if !targets[c.userID] {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c.conn] = c
			h.mutex.Unlock()
			log.Println("New WS client connected")

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
