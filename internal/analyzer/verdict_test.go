package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdict(t *testing.T) {
	tests := []struct {
		name       string
		isPhishing bool
		confidence float64
		wantTier   string
	}{
		{"phishing high", true, 0.95, "HIGH RISK"},
		{"phishing mid", true, 0.7, "SUSPICIOUS"},
		{"phishing low", true, 0.55, "POTENTIAL RISK"},
		{"legitimate high", false, 0.95, "SAFE"},
		{"legitimate mid", false, 0.7, "LIKELY SAFE"},
		{"legitimate low", false, 0.55, "UNCERTAIN"},

		// Boundaries are exclusive on the upper side.
		{"phishing boundary 0.8 uses lower tier", true, 0.8, "SUSPICIOUS"},
		{"legitimate boundary 0.8 uses lower tier", false, 0.8, "LIKELY SAFE"},
		{"phishing boundary 0.6 uses lower tier", true, 0.6, "POTENTIAL RISK"},
		{"legitimate boundary 0.6 uses lower tier", false, 0.6, "UNCERTAIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Verdict(tt.isPhishing, tt.confidence)
			assert.Contains(t, got, tt.wantTier)
		})
	}

	t.Run("confidence rendered as percent with one decimal", func(t *testing.T) {
		got := Verdict(true, 0.873)
		assert.Contains(t, got, "87.3%")
	})

	t.Run("uncertain tier carries no percentage", func(t *testing.T) {
		got := Verdict(false, 0.51)
		assert.NotContains(t, got, "%")
	})

	t.Run("safe boundary distinguishes SAFE from LIKELY SAFE", func(t *testing.T) {
		assert.Contains(t, Verdict(false, 0.801), "✅ SAFE")
		assert.NotContains(t, Verdict(false, 0.8), "✅ SAFE:")
	})
}
