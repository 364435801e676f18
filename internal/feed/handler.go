package feed

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Handler upgrades feed connections and pumps hub deliveries to the client.
type Handler struct {
	hub      *Hub
	logger   *zap.SugaredLogger
	upgrader websocket.Upgrader
}

// NewHandler creates a new feed handler.
func NewHandler(hub *Hub, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Feed godoc
// @Summary Subscribe to the live request feed
// @Description Upgrades the connection to a websocket and delivers the full request snapshot on connect, after every status transition, and on a periodic refresh
// @Tags feed
// @Success 101
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /ws/feed [get]
func (h *Handler) Feed(c *gin.Context) { //nolint:godot
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "error", err)
		return
	}

	initial, err := h.hub.SnapshotPayload(c.Request.Context())
	if err != nil {
		h.logger.Errorw("initial feed snapshot failed", "error", err)
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "SUBSCRIPTION_FAILURE"),
			time.Now().Add(writeWait),
		)
		_ = conn.Close()
		return
	}

	deliveries := h.hub.Subscribe()
	done := make(chan struct{})

	go h.readLoop(conn, done)
	go h.writeLoop(conn, initial, deliveries, done)
}

// readLoop discards client frames and detects disconnects.
func (h *Handler) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeLoop(conn *websocket.Conn, initial []byte, deliveries chan []byte, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.hub.Unsubscribe(deliveries)
		_ = conn.Close()
	}()

	if err := h.write(conn, initial); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return
		case payload, ok := <-deliveries:
			if !ok {
				_ = conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
					time.Now().Add(writeWait),
				)
				return
			}
			if err := h.write(conn, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) write(conn *websocket.Conn, payload []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
