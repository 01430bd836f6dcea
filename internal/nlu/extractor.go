// internal/nlu/extractor.go
package nlu

import (
	"context"
	"encoding/json"
	"strings"

	"ekthaa-chatbot/internal/common/logger"
	"ekthaa-chatbot/internal/common/metrics"
	"ekthaa-chatbot/internal/models"
)

const extractSystemPrompt = `You are an NLU engine for a product discovery chatbot.
Extract intent + filters from user message and return ONLY valid JSON.

Supported intents:
- product_search
- price_filter
- category_search
- business_finder
- no_result

Return JSON keys:
{
  "intent": "...",
  "product_name": "string or null",
  "category": "Grocery/Vegetables or null",
  "max_price": number or null,
  "business_category": "Grocery/Vegetables or null"
}

Rules:
- If query mentions "under", "below", "less than", set max_price
- If query is like "where can I buy vegetables" => category_search
- If query says "grocery stores near me" => business_finder + business_category="Grocery"
- If query asks "who sells dal" => product_search, product_name="dal"`

const (
	extractTemperature = 0.1
	extractMaxTokens   = 300
)

// Completer is the LLM surface the extractor needs.
type Completer interface {
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

// Extractor turns a raw chat message into a ParsedIntent. It tries the LLM
// first and falls back to the regex heuristic on any failure, so extraction
// itself never errors.
type Extractor struct {
	completer Completer
	logger    logger.Logger
}

// NewExtractor builds an extractor. A nil completer disables the LLM path
// entirely; the heuristic handles everything.
func NewExtractor(completer Completer, log logger.Logger) *Extractor {
	return &Extractor{
		completer: completer,
		logger:    log.WithFields(map[string]interface{}{"component": "extractor"}),
	}
}

type extractionPayload struct {
	Intent           string  `json:"intent"`
	ProductName      *string `json:"product_name"`
	Category         *string `json:"category"`
	MaxPrice         *int    `json:"max_price"`
	BusinessCategory *string `json:"business_category"`
}

func (e *Extractor) Extract(ctx context.Context, message string) models.ParsedIntent {
	if e.completer != nil {
		parsed, err := e.llmExtract(ctx, message)
		if err == nil {
			parsed.WantsSeller = wantsSeller(message)
			return parsed
		}
		e.logger.WithError(err).Warn("LLM intent extraction failed, using heuristic")
		metrics.LLMFallbacks.WithLabelValues("extract").Inc()
	}
	return HeuristicExtract(message)
}

func (e *Extractor) llmExtract(ctx context.Context, message string) (models.ParsedIntent, error) {
	raw, err := e.completer.Complete(ctx, extractSystemPrompt, message, extractTemperature, extractMaxTokens)
	if err != nil {
		return models.ParsedIntent{}, err
	}

	raw = stripCodeFences(raw)
	if err := validateExtraction(raw); err != nil {
		return models.ParsedIntent{}, err
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return models.ParsedIntent{}, ErrIntentParseFailed
	}

	// Intent stays empty when the model resolved nothing; the context merge
	// fills it from the previous turn.
	return models.ParsedIntent{
		Intent:           models.Intent(payload.Intent),
		ProductName:      deref(payload.ProductName),
		Category:         deref(payload.Category),
		MaxPrice:         payload.MaxPrice,
		BusinessCategory: deref(payload.BusinessCategory),
	}, nil
}

func wantsSeller(message string) bool {
	return strings.Contains(strings.ToLower(message), "who sell")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
