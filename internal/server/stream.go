package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ayusman/handspell/internal/app"
)

// streamInterval paces the MJPEG stream at ~15 FPS.
const streamInterval = 66 * time.Millisecond

// StreamHandler serves the annotated frames published by the render
// loop as an MJPEG stream.
type StreamHandler struct {
	frames *app.FrameFeed
}

// NewStreamHandler creates a StreamHandler reading from frames.
func NewStreamHandler(frames *app.FrameFeed) *StreamHandler {
	return &StreamHandler{frames: frames}
}

// ServeHTTP streams MJPEG frames to the client until it disconnects.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var lastSeq uint64

	for {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		jpeg, seq := h.frames.Latest()
		if jpeg == nil || seq == lastSeq {
			time.Sleep(streamInterval)
			continue
		}
		lastSeq = seq

		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(jpeg))
		w.Write(jpeg)
		fmt.Fprintf(w, "\r\n")

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		time.Sleep(streamInterval)
	}
}
