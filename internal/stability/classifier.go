// Package stability debounces raw per-frame prediction labels into
// stable letter events.
package stability

import (
	"sync"

	"github.com/ayusman/handspell/internal/classify"
)

// DefaultThreshold is the number of consecutive identical observations
// required before a label is considered stable.
const DefaultThreshold = 6

// Classifier tracks consecutive identical labels and emits a stable
// event exactly once per continuous hold.
type Classifier struct {
	mu        sync.Mutex
	threshold int
	last      string
	count     int
	current   string
}

// New creates a Classifier with the given stability threshold. Values
// less than 1 fall back to DefaultThreshold.
func New(threshold int) *Classifier {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Classifier{threshold: threshold}
}

// Observe consumes one raw prediction label and reports whether it just
// became stable.
//
// A sentinel label resets tracking and never emits. A repeated label
// increments the consecutive count; a new label restarts it at 1. The
// stable event fires when the count equals the threshold exactly, so a
// sign held longer than the threshold triggers only once until it is
// interrupted and re-stabilized.
func (c *Classifier) Observe(label string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if classify.IsSentinel(label) {
		c.last = ""
		c.count = 0
		c.current = ""
		return "", false
	}

	// Display tracks the raw label every frame, independent of stability.
	c.current = label

	if label == c.last {
		c.count++
	} else {
		c.last = label
		c.count = 1
	}

	if c.count == c.threshold {
		return label, true
	}
	return "", false
}

// Current returns the label to display for the most recent observation,
// or an empty string if the last observation was a sentinel.
func (c *Classifier) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Reset clears all tracking state.
func (c *Classifier) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = ""
	c.count = 0
	c.current = ""
}
