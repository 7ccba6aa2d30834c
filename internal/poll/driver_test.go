package poll

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ayusman/handspell/internal/classify"
)

// stubSource returns a canned JPEG payload.
type stubSource struct {
	ready atomic.Bool
	err   error
}

func (s *stubSource) Ready() bool { return s.ready.Load() }

func (s *stubSource) NextJPEG() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte{0xFF, 0xD8}, nil
}

func newReadySource() *stubSource {
	s := &stubSource{}
	s.ready.Store(true)
	return s
}

func TestDriver_ForwardsResults(t *testing.T) {
	client := classify.NewMockClassifier()
	client.SetScript([]classify.Result{{Label: "A"}})

	var mu sync.Mutex
	var labels []string

	d := New(Config{
		Source:   newReadySource(),
		Client:   client,
		Interval: 5 * time.Millisecond,
		OnResult: func(r classify.Result) {
			mu.Lock()
			labels = append(labels, r.Label)
			mu.Unlock()
		},
	})
	d.Start()
	defer d.Stop()

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := len(labels)
		mu.Unlock()
		if n >= 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("driver forwarded %d results, want at least 3", n)
		case <-time.After(5 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	for _, l := range labels {
		if l != "A" {
			t.Errorf("forwarded label = %q, want %q", l, "A")
		}
	}
}

func TestDriver_PausedSkipsButKeepsPolling(t *testing.T) {
	client := classify.NewMockClassifier()

	var paused atomic.Bool
	paused.Store(true)

	d := New(Config{
		Source:   newReadySource(),
		Client:   client,
		Interval: 5 * time.Millisecond,
		Paused:   paused.Load,
	})
	d.Start()
	defer d.Stop()

	time.Sleep(50 * time.Millisecond)
	if got := client.Calls(); got != 0 {
		t.Errorf("Classify called %d times while paused, want 0", got)
	}

	// Unpausing must resume without restarting the driver: polling never
	// stalls permanently.
	paused.Store(false)

	deadline := time.After(2 * time.Second)
	for client.Calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("driver did not resume after unpause")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestDriver_SourceNotReadySkips(t *testing.T) {
	client := classify.NewMockClassifier()
	src := &stubSource{} // never ready

	d := New(Config{
		Source:   src,
		Client:   client,
		Interval: 5 * time.Millisecond,
	})
	d.Start()
	defer d.Stop()

	time.Sleep(50 * time.Millisecond)
	if got := client.Calls(); got != 0 {
		t.Errorf("Classify called %d times without a ready source, want 0", got)
	}
}

func TestDriver_TransportErrorDoesNotForward(t *testing.T) {
	client := classify.NewMockClassifier()
	client.SetError(errors.New("connection refused"))

	var forwarded atomic.Int64

	d := New(Config{
		Source:   newReadySource(),
		Client:   client,
		Interval: 5 * time.Millisecond,
		OnResult: func(classify.Result) { forwarded.Add(1) },
	})
	d.Start()
	defer d.Stop()

	deadline := time.After(2 * time.Second)
	for client.Calls() < 3 {
		select {
		case <-deadline:
			t.Fatal("driver stopped retrying after transport errors")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if got := forwarded.Load(); got != 0 {
		t.Errorf("forwarded %d results despite transport errors, want 0", got)
	}
}

func TestDriver_StopTerminates(t *testing.T) {
	d := New(Config{
		Source:   newReadySource(),
		Client:   classify.NewMockClassifier(),
		Interval: 5 * time.Millisecond,
	})

	d.Start()
	d.Stop()

	// Stop must be idempotent and Start must work again afterwards.
	d.Stop()
	d.Start()
	d.Stop()
}

func TestDriver_StartIdempotent(t *testing.T) {
	client := classify.NewMockClassifier()
	d := New(Config{
		Source:   newReadySource(),
		Client:   client,
		Interval: 5 * time.Millisecond,
	})

	d.Start()
	d.Start() // must not spawn a second loop
	defer d.Stop()

	time.Sleep(60 * time.Millisecond)

	// With a 5ms sequential tick, a single loop can run at most ~12
	// ticks in 60ms; two loops would roughly double that.
	if got := client.Calls(); got > 20 {
		t.Errorf("Classify called %d times, suggests duplicate polling loops", got)
	}
}

// Guard against interface drift: the real client must satisfy Classifier.
var _ Classifier = (*classify.Client)(nil)

// And the mock, which the tests above rely on.
var _ Classifier = (*classify.MockClassifier)(nil)
