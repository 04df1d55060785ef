// Package stream pushes periodic quote refreshes to dashboard clients over
// WebSocket.
package stream

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"GoldPulse/internal/domain/models"
	"GoldPulse/pkg/logger"
)

// QuoteSource provides the quotes pushed to subscribers.
type QuoteSource interface {
	GetBatchQuotes(ctx context.Context, symbols []string) ([]models.Quote, error)
}

// Update is one frame sent to every connected client.
type Update struct {
	Type      string         `json:"type"`
	Quotes    []models.Quote `json:"quotes"`
	Timestamp int64          `json:"timestamp"`
}

type client struct {
	conn *websocket.Conn
	send chan *Update
}

// Hub fans periodic quote refreshes out to all connected clients.
type Hub struct {
	source   QuoteSource
	symbols  []string
	interval time.Duration
	log      *logger.Logger

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub(source QuoteSource, symbols []string, interval time.Duration, log *logger.Logger) *Hub {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Hub{
		source:   source,
		symbols:  symbols,
		interval: interval,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The dashboard is served from a different origin in dev.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Run drives the refresh loop until ctx is cancelled. Fetch errors skip the
// tick; connected clients just wait for the next one.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-ticker.C:
			if h.clientCount() == 0 {
				continue
			}
			quotes, err := h.source.GetBatchQuotes(ctx, h.symbols)
			if err != nil || len(quotes) == 0 {
				h.log.Warn("stream refresh failed", logger.Error(err))
				continue
			}
			h.broadcast(&Update{
				Type:      "quotes",
				Quotes:    quotes,
				Timestamp: time.Now().UnixMilli(),
			})
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(u *Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- u:
		default:
			// drop on backpressure
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		close(c.send)
		delete(h.clients, c)
	}
}

// ServeWS upgrades the request and keeps the connection subscribed until
// the peer goes away.
func (h *Hub) ServeWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{conn: conn, send: make(chan *Update, 8)}
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	h.log.Debug("stream client connected", logger.String("remote", conn.RemoteAddr().String()))

	// write loop
	go func() {
		defer conn.Close()
		for u := range cl.send {
			if err := conn.WriteJSON(u); err != nil {
				h.remove(cl)
				return
			}
		}
	}()

	// read loop, only to notice the close
	go func() {
		defer h.remove(cl)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}
