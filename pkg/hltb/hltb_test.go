package hltb

import (
	"testing"
)

func TestParseHours(t *testing.T) {

	tests := map[string]float64{
		"26½ Hours":  26.5,
		"70 Hours":   70,
		"12 Hours":   12,
		"½ Hours":    0.5,
		"30 Mins":    0.5,
		"":           0,
		"--":         0,
		"  8 Hours ": 8,
	}

	for in, want := range tests {
		if got := parseHours(in); got != want {
			t.Error(in, got, want)
		}
	}
}
