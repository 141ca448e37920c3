package ai

// GenerationResponse represents the outcome of a summary or bullet point request.
// Status is ok, not_ready or failed; Text is always meant for display.
type GenerationResponse struct {
	Status string   `json:"status"`
	Text   string   `json:"text"`
	Items  []string `json:"items,omitempty"`
}

// ChatTurnResponse represents one chat message
type ChatTurnResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse represents the answer to a chat message
type ChatResponse struct {
	Status  string             `json:"status"`
	Text    string             `json:"text"`
	History []ChatTurnResponse `json:"history"`
}
