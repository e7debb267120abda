package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/al1ina/HackTheBias/internal/classify"
	"github.com/al1ina/HackTheBias/internal/landmark"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // frontend is served from a different origin in dev
	},
}

// LiveHandler classifies landmark frames streamed over a WebSocket. The
// client sends one message per camera frame; the server answers each with
// the classification result. Frames are independent: no smoothing, no
// state between messages.
type LiveHandler struct{}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler() *LiveHandler {
	return &LiveHandler{}
}

// liveRequest is one streamed frame. Target is optional; when present the
// reply carries a match flag for it.
type liveRequest struct {
	Landmarks landmark.Frame `json:"landmarks"`
	Target    string         `json:"target"`
}

type liveResponse struct {
	Label      classify.Letter `json:"label"`
	Confidence float64         `json:"confidence"`
	Target     classify.Letter `json:"target,omitempty"`
	Match      *bool           `json:"match,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// ServeHTTP handles WebSocket upgrade requests on /api/live.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req liveRequest
		if err := conn.ReadJSON(&req); err != nil {
			// Closed connection or unreadable payload; either way the
			// stream is done.
			break
		}

		if err := conn.WriteJSON(h.respond(req)); err != nil {
			break
		}
	}
}

// respond classifies one streamed frame.
func (h *LiveHandler) respond(req liveRequest) liveResponse {
	if len(req.Landmarks) == 0 {
		return liveResponse{Label: classify.Unknown, Error: "Landmarks are required"}
	}

	if req.Target != "" {
		if !classify.Supported(req.Target) {
			return liveResponse{Label: classify.Unknown, Error: "Unsupported target letter"}
		}
		eval := classify.Evaluate(req.Landmarks, req.Target)
		return liveResponse{
			Label:      eval.Letter,
			Confidence: eval.Confidence,
			Target:     eval.Target,
			Match:      &eval.Match,
		}
	}

	result := classify.Classify(req.Landmarks)
	return liveResponse{Label: result.Letter, Confidence: result.Confidence}
}
