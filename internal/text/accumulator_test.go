package text

import (
	"sync"
	"testing"
	"time"

	"github.com/ayusman/handspell/internal/speech"
)

func TestAccumulator_AppendsSingleCharacter(t *testing.T) {
	a := New(speech.NewMockSpeaker(), time.Minute)

	a.Accept("H")
	if got := a.Word(); got != "H" {
		t.Errorf("Word() = %q, want %q", got, "H")
	}
}

func TestAccumulator_CooldownDropsLetters(t *testing.T) {
	a := New(speech.NewMockSpeaker(), time.Minute)

	a.Accept("A")
	a.Accept("B") // gate active: dropped entirely
	a.Accept("C")

	if got := a.Word(); got != "A" {
		t.Errorf("Word() = %q, want %q (letters during cooldown must be dropped)", got, "A")
	}
}

func TestAccumulator_CooldownExpires(t *testing.T) {
	a := New(speech.NewMockSpeaker(), 30*time.Millisecond)

	a.Accept("A")
	time.Sleep(100 * time.Millisecond)
	a.Accept("B")

	if got := a.Word(); got != "AB" {
		t.Errorf("Word() = %q, want %q after cooldown expiry", got, "AB")
	}
}

func TestAccumulator_DroppedLetterDoesNotRestartGate(t *testing.T) {
	a := New(speech.NewMockSpeaker(), 50*time.Millisecond)

	a.Accept("A")
	time.Sleep(30 * time.Millisecond)
	a.Accept("B") // dropped, must not re-arm the gate
	time.Sleep(30 * time.Millisecond)

	// 60ms after "A" armed the 50ms gate: it must be open again.
	a.Accept("C")
	if got := a.Word(); got != "AC" {
		t.Errorf("Word() = %q, want %q (dropped letter restarted the gate)", got, "AC")
	}
}

func TestAccumulator_MultiCharacterAnnouncedNotBuffered(t *testing.T) {
	speaker := speech.NewMockSpeaker()
	a := New(speaker, time.Minute)

	a.Accept("space")

	if got := a.Word(); got != "" {
		t.Errorf("Word() = %q, want empty (multi-character labels never buffer)", got)
	}
	got := speaker.Utterances()
	if len(got) != 1 || got[0] != "space" {
		t.Errorf("Utterances() = %v, want [space]", got)
	}
}

func TestAccumulator_AnnouncesEvenWhenGateDrops(t *testing.T) {
	speaker := speech.NewMockSpeaker()
	a := New(speaker, time.Minute)

	a.Accept("A")
	a.Accept("B") // buffered nowhere, but still announced

	got := speaker.Utterances()
	if len(got) != 2 || got[1] != "B" {
		t.Errorf("Utterances() = %v, want announcement for every stabilization event", got)
	}
}

func TestAccumulator_AdvanceWord(t *testing.T) {
	a := New(speech.NewMockSpeaker(), 10*time.Millisecond)

	a.Accept("H")
	time.Sleep(50 * time.Millisecond)
	a.Accept("I")
	a.AdvanceWord()

	if got := a.Sentence(); got != "HI " {
		t.Errorf("Sentence() = %q, want %q", got, "HI ")
	}
	if got := a.Word(); got != "" {
		t.Errorf("Word() = %q, want empty after advance", got)
	}
}

func TestAccumulator_AdvanceWordEmptyNoOp(t *testing.T) {
	speaker := speech.NewMockSpeaker()
	a := New(speaker, time.Minute)

	a.AdvanceWord()

	if got := a.Sentence(); got != "" {
		t.Errorf("Sentence() = %q, want empty", got)
	}
	if got := speaker.Utterances(); len(got) != 0 {
		t.Errorf("Utterances() = %v, want none for empty advance", got)
	}
}

func TestAccumulator_AdvanceThenResetRoundTrip(t *testing.T) {
	a := New(speech.NewMockSpeaker(), time.Minute)

	a.Accept("X")
	a.AdvanceWord()
	a.Reset()

	if got := a.Word(); got != "" {
		t.Errorf("Word() = %q, want empty after reset", got)
	}
	if got := a.Sentence(); got != "" {
		t.Errorf("Sentence() = %q, want empty after reset", got)
	}
}

func TestAccumulator_OnChangeFiresOnEveryAccept(t *testing.T) {
	a := New(speech.NewMockSpeaker(), time.Minute)

	var mu sync.Mutex
	calls := 0
	a.OnChange(func(word, sentence string) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	a.Accept("A")
	a.Accept("B") // dropped by the gate, display still refreshes

	mu.Lock()
	defer mu.Unlock()
	if calls != 2 {
		t.Errorf("onChange calls = %d, want 2", calls)
	}
}
