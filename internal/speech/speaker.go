// Package speech provides best-effort spoken feedback for pipeline events.
package speech

// Speaker speaks short text prompts. Implementations are best-effort: a
// Speak call made while a previous utterance is still playing is dropped,
// not queued.
type Speaker interface {
	Speak(text string)
}

// Discard is a Speaker that drops everything. Used when speech output is
// disabled in the configuration.
var Discard Speaker = discard{}

type discard struct{}

func (discard) Speak(string) {}
