package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/marvinh/leadscout/internal/api/middleware"
	"github.com/marvinh/leadscout/internal/domain"
	"github.com/marvinh/leadscout/internal/service"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// StreamHandler serves the realtime job event stream over websockets.
type StreamHandler struct {
	scout    *service.ScoutService
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a stream handler.
// Parameters:
//   - scout: job controller whose broadcaster feeds the stream.
//   - cors: origin policy shared with the HTTP middleware.
// Returns:
//   - *StreamHandler: initialized handler.
func NewStreamHandler(scout *service.ScoutService, cors middleware.CORSConfig) *StreamHandler {
	return &StreamHandler{
		scout: scout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				return middleware.IsOriginAllowed(origin, cors)
			},
		},
	}
}

// subscribeRequest is the first client message on a stream connection.
type subscribeRequest struct {
	Action string `json:"action"`
	JobID  string `json:"job_id"`
}

// Stream handles GET /ws. The client subscribes with ?job_id=... or by
// sending {"action":"subscribe","job_id":"..."} as its first message, then
// receives the job's events as JSON until it disconnects or the stream is
// closed after the job's complete event.
// Parameters:
//   - c: Gin request context.
// Returns: none (hijacks the connection).
func (h *StreamHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
	defer conn.Close()

	jobID := c.Query("job_id")
	if jobID == "" {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		var req subscribeRequest
		if err := conn.ReadJSON(&req); err != nil || req.Action != "subscribe" || req.JobID == "" {
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected subscribe message"),
				time.Now().Add(writeWait))
			return
		}
		jobID = req.JobID
	}

	hub := h.scout.Broadcaster()
	sub := hub.Subscribe(jobID)
	defer hub.Unsubscribe(jobID, sub)

	// Reader goroutine: consume client frames to process pongs and detect
	// disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
			if ev.Type == domain.EventTypeComplete {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "job finished"),
					time.Now().Add(writeWait))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
