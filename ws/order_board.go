package ws

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/jibrilosman/self-order-kiosk/entity"
	"github.com/jibrilosman/self-order-kiosk/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// ErrBoardBacklog is returned by Publish when the hub cannot keep up.
var ErrBoardBacklog = errors.New("order board backlog full")

const (
	broadcastBuffer  = 64
	defaultWriteWait = 10 * time.Second
)

// OrderBoard pushes order changes to staff screens over WebSocket.
type OrderBoard struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mu         sync.Mutex
	writeWait  time.Duration
	orders     *services.OrderService
	log        logrus.FieldLogger
}

// Frame is one pushed order change. Screens drop orders that are no longer active.
type Frame struct {
	services.OrderEvent
	Active bool `json:"active"`
}

// Snapshot is the first frame a new screen receives.
type Snapshot struct {
	Type   string         `json:"type"`
	Orders []entity.Order `json:"orders"`
}

func NewOrderBoard(orders *services.OrderService, log logrus.FieldLogger) *OrderBoard {
	return &OrderBoard{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, broadcastBuffer),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		writeWait:  defaultWriteWait,
		orders:     orders,
		log:        log,
	}
}

// Run owns every write to registered connections until ctx ends. A new
// screen gets its snapshot here, so no event can fall between the snapshot
// and its first frame.
func (h *OrderBoard) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			if err := h.sendSnapshot(ctx, conn); err != nil {
				h.log.WithError(err).Warn("ws snapshot")
				conn.Close()
				continue
			}
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.drop(conn)

		case ev := <-h.broadcast:
			frame := Frame{OrderEvent: ev, Active: ev.Order.Active()}
			// only Run mutates clients, so reading it here needs no lock
			for conn := range h.clients {
				if err := h.write(conn, frame); err != nil {
					h.log.WithError(err).Warn("ws write")
					h.drop(conn)
				}
			}
		}
	}
}

func (h *OrderBoard) sendSnapshot(ctx context.Context, conn *websocket.Conn) error {
	ctx, cancel := context.WithTimeout(ctx, h.writeWait)
	defer cancel()
	active, err := h.orders.ListActive(ctx)
	if err != nil {
		return err
	}
	return h.write(conn, Snapshot{Type: "snapshot", Orders: active})
}

func (h *OrderBoard) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// write gives up on a screen that has not taken a frame within writeWait.
func (h *OrderBoard) write(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}

// Publish queues ev for every connected screen without blocking the caller.
func (h *OrderBoard) Publish(ctx context.Context, ev services.OrderEvent) error {
	select {
	case h.broadcast <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBoardBacklog
	}
}

// Clients is the number of connected screens.
func (h *OrderBoard) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderBoard) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade")
		return
	}

	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}

	go h.drain(conn)
}

// drain discards client frames; a read error means the screen went away.
func (h *OrderBoard) drain(conn *websocket.Conn) {
	defer func() {
		select {
		case h.unregister <- conn:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
