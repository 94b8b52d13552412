package intensity

import (
	"strings"
	"testing"

	"github.com/carbon-dev/carbon/internal/domain"
)

func TestClassifyTiers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Intensity
	}{
		{"empty", "", domain.IntensityLow},
		{"plain text", "thinking about the garden today", domain.IntensityLow},
		{"single marker", "i feel so alone!", domain.IntensityMed},
		// Two markers (2+2), three exclamations (1.5), one length block (0.5).
		{"two markers with exclamations", "I feel completely hopeless and empty!!!", domain.IntensityHigh},
		{"marker case insensitive", "HOPELESS!", domain.IntensityMed},
		{"three markers", "rage and grief and panic", domain.IntensityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Level != tt.want {
				t.Errorf("Classify(%q).Level = %s, want %s", tt.text, got.Level, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	text := "I can't do this anymore!!"
	first := Classify(text)
	for i := 0; i < 5; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("call %d returned %+v, first call returned %+v", i, got, first)
		}
	}
}

func TestClassifyLengthCap(t *testing.T) {
	// No markers, no exclamations: length alone contributes at most 6 points,
	// which lands exactly on the HIGH threshold.
	long := strings.Repeat("a calm and ordinary sentence ", 200)
	got := Classify(long)
	if got.Level != domain.IntensityHigh {
		t.Errorf("very long neutral text = %s, want HIGH from capped length score", got.Level)
	}
}

func TestClassifyLabels(t *testing.T) {
	if got := Classify("").Label; got != "Low intensity" {
		t.Errorf("empty label = %q, want %q", got, "Low intensity")
	}
	if got := Classify("rage and grief and panic").Label; got != "High intensity" {
		t.Errorf("high label = %q, want %q", got, "High intensity")
	}
}
