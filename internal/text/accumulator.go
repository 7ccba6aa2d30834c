// Package text accumulates stabilized letters into words and sentences
// behind a cooldown gate.
package text

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ayusman/handspell/internal/speech"
)

// DefaultCooldown is the dead-time after a letter is accepted, during
// which further stable letters are dropped.
const DefaultCooldown = 500 * time.Millisecond

// Spoken cues for buffer operations.
const (
	cueNextWord = "next word"
	cueReset    = "reset"
)

// Accumulator owns the word and sentence buffers. Stable letters are
// appended to the word buffer unless the cooldown gate is active;
// AdvanceWord promotes the word buffer into the sentence buffer.
type Accumulator struct {
	mu       sync.Mutex
	word     string
	sentence string
	cooling  bool
	cooldown time.Duration
	speaker  speech.Speaker
	onChange func(word, sentence string)
}

// New creates an Accumulator speaking through speaker. A cooldown of
// zero or less falls back to DefaultCooldown.
func New(speaker speech.Speaker, cooldown time.Duration) *Accumulator {
	if speaker == nil {
		speaker = speech.Discard
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Accumulator{
		speaker:  speaker,
		cooldown: cooldown,
	}
}

// OnChange sets the callback invoked with the buffer contents after
// every mutation or attempted mutation (display refresh).
func (a *Accumulator) OnChange(fn func(word, sentence string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onChange = fn
}

// Accept consumes one stabilized label.
//
// The label is announced on every call, even when the cooldown gate
// drops it: audible feedback fires once per stabilization event
// regardless of deduplication. While the gate is active the event is
// otherwise discarded entirely (no buffering, no gate restart). A
// single-character label is appended to the word buffer and arms the
// gate; longer labels are announced but never buffered.
func (a *Accumulator) Accept(label string) {
	a.speaker.Speak(label)

	a.mu.Lock()
	if !a.cooling && utf8.RuneCountInString(label) == 1 {
		a.word += label
		a.cooling = true
		time.AfterFunc(a.cooldown, a.coolOff)
	}
	a.mu.Unlock()

	a.notify()
}

// coolOff is the fire-once gate deactivation.
func (a *Accumulator) coolOff() {
	a.mu.Lock()
	a.cooling = false
	a.mu.Unlock()
}

// AdvanceWord promotes a non-empty word buffer into the sentence buffer
// followed by a separator space, then announces the word cue. An empty
// word buffer is a no-op.
func (a *Accumulator) AdvanceWord() {
	a.mu.Lock()
	if a.word == "" {
		a.mu.Unlock()
		return
	}
	a.sentence += a.word + " "
	a.word = ""
	a.mu.Unlock()

	a.notify()
	a.speaker.Speak(cueNextWord)
}

// Reset clears both buffers and announces the reset cue.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	a.word = ""
	a.sentence = ""
	a.mu.Unlock()

	a.notify()
	a.speaker.Speak(cueReset)
}

// Word returns the current word buffer.
func (a *Accumulator) Word() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.word
}

// Sentence returns the current sentence buffer.
func (a *Accumulator) Sentence() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sentence
}

// notify invokes the change callback outside the lock.
func (a *Accumulator) notify() {
	a.mu.Lock()
	fn := a.onChange
	word, sentence := a.word, a.sentence
	a.mu.Unlock()

	if fn != nil {
		fn(word, sentence)
	}
}
