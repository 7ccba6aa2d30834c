package speech

import "sync"

// MockSpeaker records spoken text for tests.
type MockSpeaker struct {
	mu         sync.Mutex
	utterances []string
}

// NewMockSpeaker creates an empty MockSpeaker.
func NewMockSpeaker() *MockSpeaker {
	return &MockSpeaker{}
}

// Speak records the text.
func (m *MockSpeaker) Speak(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.utterances = append(m.utterances, text)
}

// Utterances returns a copy of everything spoken so far.
func (m *MockSpeaker) Utterances() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.utterances))
	copy(out, m.utterances)
	return out
}

// Clear discards recorded utterances.
func (m *MockSpeaker) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.utterances = nil
}
