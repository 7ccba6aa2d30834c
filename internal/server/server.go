// Package server provides the HTTP control surface for Handspell: the
// display state, user controls, the annotated MJPEG stream, and the
// landmarks WebSocket.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ayusman/handspell/internal/app"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Session   *app.Session
	Frames    *app.FrameFeed
}

// Server is the HTTP server for the Handspell application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Session != nil {
		s.mux.HandleFunc("/api/state", s.handleState)
		s.mux.HandleFunc("/api/reset", s.handleReset)
		s.mux.HandleFunc("/api/word", s.handleAdvanceWord)
		s.mux.HandleFunc("/api/speak", s.handleSpeak)
		s.mux.HandleFunc("/api/pause", s.handlePause)
	}

	if s.config.Frames != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Frames))
	}

	if s.config.Session != nil {
		s.mux.Handle("/api/landmarks", NewStateHandler(s.config.Session))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}
	writeJSON(w, response)
}

// handleState handles GET requests to /api/state.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.config.Session.Snapshot())
}

// handleReset handles POST requests to /api/reset: clears the word and
// sentence buffers, stability tracking, and the overlay.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.config.Session.Reset()
	if s.config.Frames != nil {
		s.config.Frames.Clear()
	}
	writeJSON(w, s.config.Session.Snapshot())
}

// handleAdvanceWord handles POST requests to /api/word: promotes the
// word buffer into the sentence buffer.
func (s *Server) handleAdvanceWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.config.Session.AdvanceWord()
	writeJSON(w, s.config.Session.Snapshot())
}

// handleSpeak handles POST requests to /api/speak: speaks the sentence
// buffer.
func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.config.Session.SpeakSentence()
	writeJSON(w, s.config.Session.Snapshot())
}

// pauseRequest is the optional body for /api/pause. Without a body the
// paused state toggles.
type pauseRequest struct {
	Paused *bool `json:"paused"`
}

// handlePause handles POST requests to /api/pause.
func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req pauseRequest
	body, err := io.ReadAll(r.Body)
	if err == nil && len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	if req.Paused != nil {
		s.config.Session.SetPaused(*req.Paused)
	} else {
		s.config.Session.TogglePause()
	}
	writeJSON(w, s.config.Session.Snapshot())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
