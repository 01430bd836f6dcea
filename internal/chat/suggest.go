// internal/chat/suggest.go
package chat

import (
	"context"
	"encoding/json"
	"strings"

	"ekthaa-chatbot/internal/common/metrics"
)

const suggestSystemPrompt = `You are a product discovery assistant for local stores in Hyderabad.
The catalog includes:
- Products: Basmati Rice, Fresh Tomatoes, Sunflower Oil, Whole Wheat Atta, Fresh Onions, Toor Dal
- Categories: Grocery, Vegetables
- Businesses: Sai Kirana Store (Madhapur), Fresh Mart Vegetables (Gachibowli), Quality Grocers (Kondapur)

Generate 4-6 short, natural example questions a user might ask.
Return ONLY a JSON list of strings, e.g.:
["Show me rice", "Products under Rs.50", "Where can I buy vegetables?", "Grocery stores near me", "Who sells dal?", "Do you have apples?"]`

const suggestUserPrompt = "Suggest example questions for the chatbot."

const (
	suggestTemperature = 0.5
	suggestMaxTokens   = 250
)

func defaultSuggestions() []string {
	return []string{
		"Show me rice",
		"Products under Rs.50",
		"Where can I buy vegetables?",
		"Grocery stores near me",
		"Who sells dal?",
		"Do you have apples?",
	}
}

// Suggest returns example questions for the UI, LLM-generated when possible
// and the static list otherwise.
func (s *Service) Suggest(ctx context.Context) []string {
	if s.completer == nil {
		return defaultSuggestions()
	}

	raw, err := s.completer.Complete(ctx, suggestSystemPrompt, suggestUserPrompt,
		suggestTemperature, suggestMaxTokens)
	if err != nil {
		s.logger.WithError(err).Warn("LLM suggestions failed, using static list")
		metrics.LLMFallbacks.WithLabelValues("suggest").Inc()
		return defaultSuggestions()
	}

	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.ReplaceAll(raw, "```json", "")
		raw = strings.ReplaceAll(raw, "```", "")
		raw = strings.TrimSpace(raw)
	}

	var questions []string
	if err := json.Unmarshal([]byte(raw), &questions); err != nil || len(questions) == 0 {
		metrics.LLMFallbacks.WithLabelValues("suggest").Inc()
		return defaultSuggestions()
	}
	return questions
}
