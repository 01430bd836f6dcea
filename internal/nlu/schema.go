// internal/nlu/schema.go
package nlu

import "github.com/xeipuuv/gojsonschema"

// extractionSchema guards the LLM's structured output before it is trusted.
// Any reply that fails validation triggers the heuristic fallback.
const extractionSchema = `{
	"type": "object",
	"required": ["intent"],
	"properties": {
		"intent": {
			"type": "string",
			"enum": ["product_search", "price_filter", "category_search", "business_finder", "no_result", "fallback"]
		},
		"product_name": {"type": ["string", "null"]},
		"category": {"type": ["string", "null"]},
		"max_price": {"type": ["number", "null"]},
		"business_category": {"type": ["string", "null"]}
	}
}`

var extractionSchemaLoader = gojsonschema.NewStringLoader(extractionSchema)

func validateExtraction(raw string) error {
	result, err := gojsonschema.Validate(extractionSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return err
	}
	if !result.Valid() {
		return ErrIntentParseFailed
	}
	return nil
}
