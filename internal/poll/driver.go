// Package poll drives the fixed-interval classification loop.
package poll

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ayusman/handspell/internal/capture"
	"github.com/ayusman/handspell/internal/classify"
)

// DefaultInterval is the delay between classification requests
// (~20 requests per second).
const DefaultInterval = 50 * time.Millisecond

// Classifier is the remote classification round-trip issued each tick.
type Classifier interface {
	Classify(ctx context.Context, jpegFrame []byte) (classify.Result, error)
}

// Config holds the collaborators and tuning for a Driver.
type Config struct {
	// Source supplies encoded frames.
	Source capture.FrameSource
	// Client performs the classification round-trip.
	Client Classifier
	// Interval between ticks; DefaultInterval when zero or negative.
	Interval time.Duration
	// Paused reports whether polling is globally suspended. May be nil.
	Paused func() bool
	// OnResult receives the outcome of each successful request.
	OnResult func(classify.Result)
}

// Driver issues one classification request per interval. Ticks are
// strictly sequential: the timer is re-armed only after the current
// request settles, so there is at most one pending tick and network
// latency can never cause overlapping in-flight requests.
type Driver struct {
	config Config
	mu     sync.Mutex
	stopCh chan struct{}
	done   chan struct{}
}

// New creates a Driver from config.
func New(config Config) *Driver {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Paused == nil {
		config.Paused = func() bool { return false }
	}
	return &Driver{config: config}
}

// Start launches the polling loop. Starting a running driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopCh != nil {
		return
	}
	d.stopCh = make(chan struct{})
	d.done = make(chan struct{})
	go d.loop(d.stopCh, d.done)
}

// Stop terminates the polling loop and waits for the current tick to
// settle. Stopping a stopped driver is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	stopCh, done := d.stopCh, d.done
	d.stopCh = nil
	d.done = nil
	d.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-done
	}
}

func (d *Driver) loop(stopCh, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(d.config.Interval)
	defer timer.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timer.C:
			d.tick()
			// Re-arm only after the tick settles: one pending tick at
			// a time, forever, even across skipped or failed requests.
			timer.Reset(d.config.Interval)
		}
	}
}

// tick performs one poll cycle. Skips (paused or source not ready) and
// failures leave all shared state untouched; the next tick retries at
// the fixed interval with no backoff.
func (d *Driver) tick() {
	if d.config.Paused() || d.config.Source == nil || !d.config.Source.Ready() {
		return
	}

	frame, err := d.config.Source.NextJPEG()
	if err != nil {
		log.Printf("poll: read frame: %v", err)
		return
	}

	result, err := d.config.Client.Classify(context.Background(), frame)
	if err != nil {
		log.Printf("poll: classify: %v", err)
		return
	}

	if d.config.OnResult != nil {
		d.config.OnResult(result)
	}
}
