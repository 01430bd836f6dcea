// internal/nlu/heuristic.go
package nlu

import (
	"regexp"
	"strconv"
	"strings"

	"ekthaa-chatbot/internal/models"
)

var (
	priceRe   = regexp.MustCompile(`(?:under|below|less\s+than)\s*(?:rs\.?|₹)?\s*(\d+)`)
	genericRe = regexp.MustCompile(`(?:show\s+me|find|search\s+for|do\s+you\s+have)\s+([a-z\s]+)`)
)

// knownProductWords are single tokens that name a catalog product outright.
var knownProductWords = []string{"rice", "dal"}

// HeuristicExtract parses a message with regexes and keyword rules. It is the
// deterministic fallback when the LLM path is unavailable, and never fails.
// Intent stays empty when no rule matches, so stored context can fill it in.
func HeuristicExtract(message string) models.ParsedIntent {
	m := strings.ToLower(strings.TrimSpace(message))
	parsed := models.ParsedIntent{}

	if match := priceRe.FindStringSubmatch(m); match != nil {
		if v, err := strconv.Atoi(match[1]); err == nil {
			parsed.MaxPrice = models.IntPtr(v)
		}
	}

	switch {
	case strings.Contains(m, "vegetable") || strings.Contains(m, "veggies"):
		parsed.Category = models.CategoryVegetables
	case strings.Contains(m, "grocery"):
		parsed.Category = models.CategoryGrocery
	}

	parsed.ProductName = extractProductName(m)
	parsed.WantsSeller = strings.Contains(m, "who sell")

	storeQuery := (strings.Contains(m, "store") || strings.Contains(m, "shop")) &&
		(strings.Contains(m, "near me") || strings.Contains(m, "nearby"))
	buyQuery := strings.Contains(m, "where can i buy") || strings.Contains(m, "where to buy") ||
		(strings.Contains(m, "where") && strings.Contains(m, "buy"))

	switch {
	case storeQuery:
		parsed.Intent = models.IntentBusinessFinder
		parsed.BusinessCategory = parsed.Category
	case parsed.Category != "" && buyQuery:
		parsed.Intent = models.IntentCategorySearch
	case parsed.MaxPrice != nil && parsed.ProductName == "":
		parsed.Intent = models.IntentPriceFilter
	case parsed.ProductName != "":
		parsed.Intent = models.IntentProductSearch
	}

	return parsed
}

func extractProductName(m string) string {
	// Leading-space pad so "who sells dal?" still hits "dal" despite the
	// trailing punctuation.
	padded := " " + m
	for _, word := range knownProductWords {
		if strings.Contains(padded, " "+word) {
			return word
		}
	}

	if match := genericRe.FindStringSubmatch(m); match != nil {
		fields := strings.Fields(strings.TrimSpace(match[1]))
		if len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}
