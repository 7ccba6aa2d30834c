// Package smooth interpolates landmark motion between classifier
// responses so the rendered skeleton moves without jitter.
package smooth

import (
	"sync"

	"github.com/ayusman/handspell/internal/landmark"
)

// DefaultAlpha is the default exponential lerp factor. 1 disables
// smoothing entirely; smaller values converge more slowly.
const DefaultAlpha = 0.2

// Smoother holds the smoothed landmark state and advances it toward the
// latest raw set one render frame at a time.
type Smoother struct {
	mu    sync.Mutex
	alpha float64
	state landmark.Set
}

// New creates a Smoother with the given lerp factor. Values outside
// (0, 1] fall back to DefaultAlpha.
func New(alpha float64) *Smoother {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultAlpha
	}
	return &Smoother{alpha: alpha}
}

// Step advances the smoothed state one frame toward raw and returns a
// snapshot of it.
//
// An empty raw set leaves the state untouched, so the last rendered
// hand freezes in place. A length change (hand appearing, disappearing
// mid-set, or a partial detection) reseeds the state as a full copy of
// raw with no interpolation. Otherwise every coordinate moves toward
// its raw target by the lerp factor.
func (s *Smoother) Step(raw landmark.Set) landmark.Set {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(raw) == 0 {
		return s.state.Clone()
	}

	if len(s.state) != len(raw) {
		s.state = raw.Clone()
		return s.state.Clone()
	}

	for i := range s.state {
		s.state[i].X += (raw[i].X - s.state[i].X) * s.alpha
		s.state[i].Y += (raw[i].Y - s.state[i].Y) * s.alpha
		s.state[i].Z += (raw[i].Z - s.state[i].Z) * s.alpha
	}

	return s.state.Clone()
}

// Reset discards the smoothed state. The next Step reseeds from raw.
func (s *Smoother) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
}
