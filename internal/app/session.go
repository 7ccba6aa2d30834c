// Package app wires the Handspell recognition pipeline together.
package app

import (
	"strings"
	"sync"
	"time"

	"github.com/ayusman/handspell/internal/classify"
	"github.com/ayusman/handspell/internal/landmark"
	"github.com/ayusman/handspell/internal/smooth"
	"github.com/ayusman/handspell/internal/speech"
	"github.com/ayusman/handspell/internal/stability"
	"github.com/ayusman/handspell/internal/text"
	"github.com/google/uuid"
)

// SessionConfig holds the pipeline tuning for a Session.
type SessionConfig struct {
	Speaker speech.Speaker
	// Threshold is the consecutive-observation count for stability.
	Threshold int
	// Cooldown is the dead-time after an accepted letter.
	Cooldown time.Duration
	// Alpha is the landmark smoothing lerp factor.
	Alpha float64
}

// State is a point-in-time snapshot of the session for display.
type State struct {
	Label    string `json:"label"`
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
	Paused   bool   `json:"paused"`
}

// Session owns all mutable pipeline state: the stability classifier, the
// text accumulator, the smoother, the latest raw landmark set, and the
// paused flag. Every mutation goes through Session methods, keeping the
// shared state confined to one owner.
type Session struct {
	id        string
	stability *stability.Classifier
	acc       *text.Accumulator
	smoother  *smooth.Smoother
	speaker   speech.Speaker

	mu           sync.Mutex
	latestRaw    landmark.Set
	lastSmoothed landmark.Set
	paused       bool
}

// NewSession creates a Session from config.
func NewSession(config SessionConfig) *Session {
	speaker := config.Speaker
	if speaker == nil {
		speaker = speech.Discard
	}
	return &Session{
		id:        uuid.New().String(),
		stability: stability.New(config.Threshold),
		acc:       text.New(speaker, config.Cooldown),
		smoother:  smooth.New(config.Alpha),
		speaker:   speaker,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// HandleResult consumes one classification result from the polling
// driver: the landmark set replaces the latest-raw observable and the
// label runs through stability tracking into the accumulator.
func (s *Session) HandleResult(r classify.Result) {
	s.mu.Lock()
	s.latestRaw = r.Landmarks.Clone()
	s.mu.Unlock()

	if label, ok := s.stability.Observe(r.Label); ok {
		s.acc.Accept(label)
	}
}

// Smoothed advances the smoother one render frame toward the latest raw
// landmarks and returns the smoothed set. Called by the render loop
// only; other consumers read LastSmoothed so the smoother is stepped
// exactly once per render frame.
func (s *Session) Smoothed() landmark.Set {
	s.mu.Lock()
	raw := s.latestRaw
	s.mu.Unlock()

	smoothed := s.smoother.Step(raw)

	s.mu.Lock()
	s.lastSmoothed = smoothed
	s.mu.Unlock()

	return smoothed
}

// LastSmoothed returns the most recent smoothed set without advancing
// the smoother.
func (s *Session) LastSmoothed() landmark.Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSmoothed
}

// Snapshot returns the current display state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	paused := s.paused
	s.mu.Unlock()

	return State{
		Label:    s.stability.Current(),
		Word:     s.acc.Word(),
		Sentence: s.acc.Sentence(),
		Paused:   paused,
	}
}

// OnChange sets the callback invoked whenever the word or sentence
// buffer changes.
func (s *Session) OnChange(fn func(word, sentence string)) {
	s.acc.OnChange(fn)
}

// AdvanceWord promotes the word buffer into the sentence buffer.
func (s *Session) AdvanceWord() {
	s.acc.AdvanceWord()
}

// SpeakSentence speaks the sentence buffer, if any.
func (s *Session) SpeakSentence() {
	sentence := strings.TrimSpace(s.acc.Sentence())
	if sentence != "" {
		s.speaker.Speak(sentence)
	}
}

// Reset clears the word and sentence buffers, stability tracking, the
// latest raw landmarks, and the smoothed overlay state.
func (s *Session) Reset() {
	s.mu.Lock()
	s.latestRaw = nil
	s.lastSmoothed = nil
	s.mu.Unlock()

	s.stability.Reset()
	s.smoother.Reset()
	s.acc.Reset()
}

// Paused reports whether polling is suspended.
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// SetPaused suspends or resumes polling. In-flight requests still
// resolve and are applied.
func (s *Session) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
}

// TogglePause flips the paused flag and returns the new value.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}
