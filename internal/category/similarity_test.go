package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"rent", "rent", 1},
		{"", "", 1},
		{"rent", "", 0},
		{"", "rent", 0},
		{"resturant", "restaurant", 0.9},  // one insertion over 10 runes
		{"abcd", "wxyz", 0},               // nothing in common
		{"kitten", "sitting", 1 - 3.0/7}, // classic 3-edit pair
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9, "%q vs %q", tt.a, tt.b)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	assert.InDelta(t, Similarity("groceries", "grocery"), Similarity("grocery", "groceries"), 1e-9)
}

func TestSimilarity_Unicode(t *testing.T) {
	// Rune-based, so one accented substitution over 4 runes.
	assert.InDelta(t, 0.75, Similarity("café", "cafe"), 1e-9)
}
