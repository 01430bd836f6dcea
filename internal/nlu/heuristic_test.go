// internal/nlu/heuristic_test.go
package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ekthaa-chatbot/internal/models"
)

// ==========================
// Intent classification
// ==========================

func TestHeuristicExtract_Intents(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    models.ParsedIntent
	}{
		{
			name:    "product search with price",
			message: "Show me rice under 150",
			want: models.ParsedIntent{
				Intent:      models.IntentProductSearch,
				ProductName: "rice",
				MaxPrice:    models.IntPtr(150),
			},
		},
		{
			name:    "price filter without product",
			message: "Products under Rs.50",
			want: models.ParsedIntent{
				Intent:   models.IntentPriceFilter,
				MaxPrice: models.IntPtr(50),
			},
		},
		{
			name:    "category search",
			message: "Where can I buy vegetables?",
			want: models.ParsedIntent{
				Intent:   models.IntentCategorySearch,
				Category: models.CategoryVegetables,
			},
		},
		{
			name:    "business finder with category",
			message: "Grocery stores near me",
			want: models.ParsedIntent{
				Intent:           models.IntentBusinessFinder,
				Category:         models.CategoryGrocery,
				BusinessCategory: models.CategoryGrocery,
			},
		},
		{
			name:    "business finder without category",
			message: "Any shops nearby?",
			want: models.ParsedIntent{
				Intent: models.IntentBusinessFinder,
			},
		},
		{
			name:    "who sells question",
			message: "Who sells dal?",
			want: models.ParsedIntent{
				Intent:      models.IntentProductSearch,
				ProductName: "dal",
				WantsSeller: true,
			},
		},
		{
			name:    "generic do-you-have",
			message: "Do you have apples?",
			want: models.ParsedIntent{
				Intent:      models.IntentProductSearch,
				ProductName: "apples",
			},
		},
		{
			name:    "unparseable message leaves intent absent",
			message: "hello there",
			want:    models.ParsedIntent{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeuristicExtract(tt.message))
		})
	}
}

// ==========================
// Field extraction details
// ==========================

func TestHeuristicExtract_PricePhrases(t *testing.T) {
	for _, message := range []string{
		"rice under 150",
		"rice below rs 150",
		"rice less than Rs.150",
		"rice under ₹150",
	} {
		got := HeuristicExtract(message)
		if assert.NotNil(t, got.MaxPrice, message) {
			assert.Equal(t, 150, *got.MaxPrice, message)
		}
	}
}

func TestHeuristicExtract_PriceWordNotAProduct(t *testing.T) {
	// "price" must not be mistaken for "rice".
	got := HeuristicExtract("what is the price")
	assert.Empty(t, got.ProductName)
}

func TestHeuristicExtract_VeggiesAlias(t *testing.T) {
	got := HeuristicExtract("where can i buy veggies")
	assert.Equal(t, models.CategoryVegetables, got.Category)
	assert.Equal(t, models.IntentCategorySearch, got.Intent)
}
