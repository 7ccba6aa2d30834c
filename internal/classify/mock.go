package classify

import (
	"context"
	"sync"
)

// MockClassifier is a test implementation that plays back a scripted
// sequence of results. Once the script is exhausted the last result
// repeats.
type MockClassifier struct {
	mu      sync.Mutex
	script  []Result
	index   int
	err     error
	calls   int
}

// NewMockClassifier creates an empty MockClassifier. With no script it
// returns the no-hand sentinel.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// SetScript sets the result sequence returned by successive Classify calls.
func (m *MockClassifier) SetScript(script []Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = script
	m.index = 0
}

// SetError makes Classify return err.
func (m *MockClassifier) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times Classify has been invoked.
func (m *MockClassifier) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Classify returns the next scripted result or the configured error.
func (m *MockClassifier) Classify(ctx context.Context, jpegFrame []byte) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++

	if m.err != nil {
		return Result{}, m.err
	}
	if len(m.script) == 0 {
		return Result{Label: LabelNoHand}, nil
	}
	if m.index >= len(m.script) {
		return m.script[len(m.script)-1], nil
	}

	r := m.script[m.index]
	m.index++
	return r, nil
}
