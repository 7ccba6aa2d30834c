// Package classify talks to the remote gesture classification service.
package classify

import (
	"strings"

	"github.com/ayusman/handspell/internal/landmark"
)

// Sentinel labels returned by the classification service (or substituted
// locally) when no letter prediction is available.
const (
	// LabelNoHand is returned by the service when no hand is in frame.
	LabelNoHand = "No Hand Detected"
	// LabelUnavailable substitutes for a missing or unparseable label.
	LabelUnavailable = "N/A"
	// LabelPredictionError is returned by the service when inference fails.
	LabelPredictionError = "Prediction Error"
	// errPrefix marks server-side failure labels such as "ERROR: Model not loaded".
	errPrefix = "ERROR"
)

// Result is the outcome of one classification round-trip.
type Result struct {
	Label     string
	Landmarks landmark.Set
}

// IsSentinel reports whether label is a non-letter steady state rather
// than a prediction. Sentinels reset stability tracking instead of
// accumulating.
func IsSentinel(label string) bool {
	switch label {
	case "", LabelNoHand, LabelUnavailable, LabelPredictionError:
		return true
	}
	return strings.HasPrefix(label, errPrefix)
}
