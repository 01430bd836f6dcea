// internal/match/fuzzy_test.go
package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ekthaa-chatbot/internal/catalog"
)

func TestBest_CorrectsTypos(t *testing.T) {
	m := NewMatcher(catalog.KnownProducts)

	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"misspelled tomatoes", "tomatos", "Fresh Tomatoes"},
		{"partial rice", "rice", "Basmati Rice"},
		{"misspelled dal", "toor daal", "Toor Dal"},
		{"exact match", "Sunflower Oil", "Sunflower Oil"},
		{"case-insensitive", "basmati rice", "Basmati Rice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Best(tt.candidate))
		})
	}
}

func TestBest_BelowThresholdReturnsInput(t *testing.T) {
	m := NewMatcher(catalog.KnownProducts)

	// Nothing in the vocabulary resembles these; the raw token survives so
	// downstream queries can still miss with the user's own words.
	assert.Equal(t, "apples", m.Best("apples"))
	assert.Equal(t, "laptop", m.Best("laptop"))
}

func TestBest_EmptyCandidate(t *testing.T) {
	m := NewMatcher(catalog.KnownCategories)
	assert.Equal(t, "", m.Best(""))
}

func TestBest_Categories(t *testing.T) {
	m := NewMatcher(catalog.KnownCategories)
	assert.Equal(t, "Vegetables", m.Best("vegetabels"))
	assert.Equal(t, "Grocery", m.Best("grocery"))
}
