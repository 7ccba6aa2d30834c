package speech

import (
	"fmt"
	"log"
	"os/exec"
	"sync/atomic"

	"github.com/mattn/go-shellwords"
)

// ExecSpeaker speaks by running an external synthesizer command
// (e.g. "espeak" or "say") with the text appended as the final argument.
type ExecSpeaker struct {
	argv []string
	busy atomic.Bool
}

// NewExecSpeaker parses command into an argv and returns an ExecSpeaker.
func NewExecSpeaker(command string) (*ExecSpeaker, error) {
	parser := shellwords.NewParser()
	argv, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse speech command: %w", err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("speech command empty")
	}
	return &ExecSpeaker{argv: argv}, nil
}

// Speak runs the synthesizer command with text. If a previous utterance
// is still playing the call is dropped.
func (s *ExecSpeaker) Speak(text string) {
	if text == "" {
		return
	}
	if !s.busy.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer s.busy.Store(false)

		args := append(append([]string{}, s.argv[1:]...), text)
		if err := exec.Command(s.argv[0], args...).Run(); err != nil {
			log.Printf("speech: %v", err)
		}
	}()
}
