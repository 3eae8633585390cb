package speech

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	speechsvc "github.com/Davooood90/rambl/backend/internal/service/speech"
	"github.com/Davooood90/rambl/backend/pkg/utils"
)

// WebSocketHandler relays recognition fragments from the browser into a
// per-connection transcription adapter and echoes the accumulated
// transcript back.
type WebSocketHandler struct {
	supported bool
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

// NewWebSocketHandler creates the transcription relay with the capability
// flag decided at startup.
func NewWebSocketHandler(supported bool, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		supported: supported,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// RegisterRoutes mounts the websocket route.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

type inboundFrame struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	IsFinal bool   `json:"isFinal,omitempty"`
}

type outboundFrame struct {
	Type       string `json:"type"`
	Text       string `json:"text,omitempty"`
	Transcript string `json:"transcript,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !h.supported {
		utils.RespondError(w, http.StatusNotImplemented, "speech transcription unavailable")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	transcriber := speechsvc.NewTranscriber(true)

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			// Treat connection loss as the stream's end-of-stream signal.
			transcriber.Fail()
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("websocket read ended", zap.Error(err))
			}
			return
		}

		switch frame.Type {
		case "start":
			if err := transcriber.Start(); err != nil {
				h.writeFrame(conn, outboundFrame{Type: "error", Error: err.Error()})
				continue
			}
			h.writeFrame(conn, outboundFrame{Type: "listening"})

		case "fragment":
			err := transcriber.Push(speechsvc.Fragment{Text: frame.Text, Final: frame.IsFinal})
			if errors.Is(err, speechsvc.ErrNotListening) {
				h.writeFrame(conn, outboundFrame{Type: "error", Error: err.Error()})
				continue
			}
			h.writeFrame(conn, outboundFrame{Type: "transcript", Transcript: transcriber.Transcript()})

		case "stop":
			h.writeFrame(conn, outboundFrame{Type: "final", Text: transcriber.Stop()})

		default:
			h.writeFrame(conn, outboundFrame{Type: "error", Error: "unknown frame type"})
		}
	}
}

func (h *WebSocketHandler) writeFrame(conn *websocket.Conn, frame outboundFrame) {
	if err := conn.WriteJSON(frame); err != nil {
		h.logger.Debug("websocket write failed", zap.Error(err))
	}
}
