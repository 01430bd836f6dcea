// internal/models/chat.go
package models

// AnonymousUser is the sentinel user identifier used when a request
// carries no user_id.
const AnonymousUser = "anonymous"

// ChatRequest is the inbound message envelope. Location is accepted for
// forward compatibility but not used by the pipeline.
type ChatRequest struct {
	Message  string                 `json:"message" binding:"required"`
	UserID   string                 `json:"user_id"`
	Location map[string]interface{} `json:"location,omitempty"`
}

// ChatResponse is the uniform outbound envelope returned by every
// pipeline branch.
type ChatResponse struct {
	Response   string     `json:"response"`
	Products   []Product  `json:"products"`
	Businesses []Business `json:"businesses,omitempty"`
	Intent     Intent     `json:"intent"`
}

// SuggestResponse carries the example-question list.
type SuggestResponse struct {
	Questions []string `json:"questions"`
}
