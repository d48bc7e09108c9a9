package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"gateway/entity"
	"gateway/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// KitchenHub pushes the active-order queue to every connected kitchen
// display. The upstream has no push channel, so the hub polls it on an
// interval and broadcasts the normalized snapshot; a freshly connected
// client gets the latest snapshot immediately.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []entity.Order

	mu       sync.Mutex
	snapshot []byte

	orders   *services.OrderService
	interval time.Duration
}

func NewKitchenHub(orders *services.OrderService, interval time.Duration) *KitchenHub {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []entity.Order),
		orders:     orders,
		interval:   interval,
	}
}

// Run owns the client set and the broadcast loop.
func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			if snap := h.latest(); snap != nil {
				if err := conn.WriteMessage(websocket.TextMessage, snap); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case orders := <-h.broadcast:
			payload, err := json.Marshal(gin.H{"orders": orders, "at": time.Now().UTC()})
			if err != nil {
				continue
			}
			h.setLatest(payload)
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// Poll fetches the active queue on the configured interval and feeds the
// broadcast channel. Upstream failures are logged and skipped; the next
// tick tries again.
func (h *KitchenHub) Poll(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetchCtx, cancel := context.WithTimeout(ctx, h.interval)
			orders, err := h.orders.Active(fetchCtx)
			cancel()
			if err != nil {
				log.Printf("kitchen poll failed: %v", err)
				continue
			}
			h.broadcast <- orders
		}
	}
}

func (h *KitchenHub) latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot
}

func (h *KitchenHub) setLatest(b []byte) {
	h.mu.Lock()
	h.snapshot = b
	h.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /kitchen/feed?token=
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.listen(conn)
}

// listen drains the connection so pings flow and close frames are seen;
// the kitchen display never sends meaningful messages.
func (h *KitchenHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
