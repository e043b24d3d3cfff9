package llm

// ChatRequest represents the body of a POST to /api/chat. Field order
// matters: the serialized form keeps messages, model, projectId in
// that order.
type ChatRequest struct {
	Messages  []Message `json:"messages"`  // Conversation history
	Model     string    `json:"model"`     // Model alias (e.g., "anthropic")
	ProjectID string    `json:"projectId"` // Project the conversation belongs to
}
