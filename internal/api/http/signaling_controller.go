package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/wellmindzone/telemed/internal/coordinator"
	"github.com/wellmindzone/telemed/internal/domain"
	"github.com/wellmindzone/telemed/lib/logger/sl"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer. SDP blobs are the largest
	// payload and fit comfortably.
	maxMessageSize = 64 * 1024
)

type SignalingController struct {
	coord     *coordinator.Coordinator
	heartbeat time.Duration
	upgrader  websocket.Upgrader
	log       *slog.Logger
}

func NewSignalingController(coord *coordinator.Coordinator, heartbeat time.Duration, log *slog.Logger) *SignalingController {
	if heartbeat <= 0 {
		heartbeat = 25 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &SignalingController{
		coord:     coord,
		heartbeat: heartbeat,
		log:       log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Connect upgrades the request to a websocket and runs the connection's
// read loop. Writes happen only in the pump goroutine; the read loop is the
// single place a disconnect is detected.
func (c *SignalingController) Connect(ctx *gin.Context) {
	sock, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.log.Error("failed to upgrade connection", sl.Err(err))
		return
	}

	conn := c.coord.Connect(sock)
	go c.writePump(conn, sock)

	pongWait := 2 * c.heartbeat
	sock.SetReadLimit(maxMessageSize)
	_ = sock.SetReadDeadline(time.Now().Add(pongWait))
	sock.SetPongHandler(func(string) error {
		conn.Touch()
		return sock.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var evt domain.Envelope
		if err := sock.ReadJSON(&evt); err != nil {
			reason := "connection closed"
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				reason = err.Error()
			}
			c.coord.Disconnect(conn.ID, reason)
			conn.Close()
			return
		}

		_ = sock.SetReadDeadline(time.Now().Add(pongWait))
		c.coord.HandleEvent(conn, evt)
	}
}

// writePump drains the connection's outbound queue and keeps the socket
// alive through intermediary timeouts with periodic pings. A ping that
// cannot be sent is a no-op: disconnects are detected by the read loop, not
// by failed probes.
func (c *SignalingController) writePump(conn *coordinator.Connection, sock *websocket.Conn) {
	ticker := time.NewTicker(c.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case evt := <-conn.Events():
			_ = sock.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sock.WriteJSON(evt); err != nil {
				c.log.Debug("write failed",
					slog.String("connection_id", conn.ID),
					slog.String("type", evt.Type),
				)
				return
			}
		case <-ticker.C:
			_ = sock.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sock.WriteMessage(websocket.PingMessage, nil); err != nil {
				continue
			}
		case <-conn.Done():
			return
		}
	}
}
