// internal/models/intent.go
package models

// Intent is the resolved conversational goal of a user message.
type Intent string

const (
	IntentProductSearch  Intent = "product_search"
	IntentPriceFilter    Intent = "price_filter"
	IntentCategorySearch Intent = "category_search"
	IntentBusinessFinder Intent = "business_finder"
	IntentNoResult       Intent = "no_result"
	IntentFallback       Intent = "fallback"
)

// ParsedIntent is the structured filter set extracted from a user message.
// String fields use "" for absent; MaxPrice uses nil so that an explicit
// zero budget stays distinct from "no budget mentioned". It is never
// persisted beyond the session context store.
type ParsedIntent struct {
	Intent           Intent `json:"intent,omitempty"`
	ProductName      string `json:"product_name,omitempty"`
	Category         string `json:"category,omitempty"`
	MaxPrice         *int   `json:"max_price,omitempty"`
	BusinessCategory string `json:"business_category,omitempty"`

	// WantsSeller marks "who sells ..." phrasing. It is per-message and is
	// deliberately excluded from serialization and context merge.
	WantsSeller bool `json:"-"`
}

// IsZero reports whether no field of the intent is set.
func (p ParsedIntent) IsZero() bool {
	return p.Intent == "" && p.ProductName == "" && p.Category == "" &&
		p.MaxPrice == nil && p.BusinessCategory == "" && !p.WantsSeller
}

// Merge combines a freshly parsed intent with the previously stored context:
// each field takes the new value if present, else falls through to prev.
// Merging a zero intent into prev yields prev unchanged.
func (p ParsedIntent) Merge(prev ParsedIntent) ParsedIntent {
	merged := ParsedIntent{
		Intent:           p.Intent,
		ProductName:      p.ProductName,
		Category:         p.Category,
		MaxPrice:         p.MaxPrice,
		BusinessCategory: p.BusinessCategory,
		WantsSeller:      p.WantsSeller,
	}
	if merged.Intent == "" {
		merged.Intent = prev.Intent
	}
	if merged.ProductName == "" {
		merged.ProductName = prev.ProductName
	}
	if merged.Category == "" {
		merged.Category = prev.Category
	}
	if merged.MaxPrice == nil {
		merged.MaxPrice = prev.MaxPrice
	}
	if merged.BusinessCategory == "" {
		merged.BusinessCategory = prev.BusinessCategory
	}
	return merged
}

// IntPtr is a convenience for building optional price filters.
func IntPtr(v int) *int {
	return &v
}
