package ai

// ChatRequest represents a question about the loaded video
type ChatRequest struct {
	Message string `json:"message" validate:"required,notblank,max=4000"`
}
