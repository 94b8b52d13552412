// Package intensity scores raw feeling text into a coarse severity tier.
// The heuristic is deterministic and cheap enough to run on every keystroke;
// it is not a diagnostic signal.
package intensity

import (
	"strings"

	"github.com/carbon-dev/carbon/internal/domain"
)

// markers are lexical fragments associated with elevated distress. Matching
// is case-insensitive substring containment, so "suic" covers the word
// family and "can't"/"cannot" cover both spellings.
var markers = []string{
	"panic",
	"hopeless",
	"worthless",
	"depressed",
	"suic",
	"hate",
	"rage",
	"destroy",
	"break",
	"empty",
	"can't",
	"cannot",
	"never",
	"alone",
	"grief",
	"mourning",
	"trauma",
}

const (
	markerPoints      = 2.0
	exclamationPoints = 0.5
	lengthUnitChars   = 120
	lengthUnitPoints  = 0.5
	lengthPointsCap   = 6.0
	highThreshold     = 6.0
	medThreshold      = 3.0
)

// Result pairs the derived tier with a display label.
type Result struct {
	Level domain.Intensity
	Label string
}

// Classify maps text to an intensity tier. It is a total function: it never
// fails and the empty string yields LOW.
func Classify(text string) Result {
	t := strings.ToLower(text)

	var score float64
	for _, m := range markers {
		if strings.Contains(t, m) {
			score += markerPoints
		}
	}
	score += float64(strings.Count(t, "!")) * exclamationPoints

	// Every started block of 120 characters adds half a point, capped at
	// 6 points total from length.
	lengthScore := float64((len(t)+lengthUnitChars-1)/lengthUnitChars) * lengthUnitPoints
	if lengthScore > lengthPointsCap {
		lengthScore = lengthPointsCap
	}
	score += lengthScore

	switch {
	case score >= highThreshold:
		return Result{Level: domain.IntensityHigh, Label: "High intensity"}
	case score >= medThreshold:
		return Result{Level: domain.IntensityMed, Label: "Medium intensity"}
	default:
		return Result{Level: domain.IntensityLow, Label: "Low intensity"}
	}
}
