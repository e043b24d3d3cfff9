// Package llm provides internal representations of the chat API's
// request payloads.
package llm

// Part is a single piece of structured message content. The chat
// endpoint currently only produces and accepts "text" parts.
type Part struct {
	Type string `json:"type"` // Part kind ("text")
	Text string `json:"text"` // The part's text content
}

// Message represents a single message in a conversation.
type Message struct {
	ID      string `json:"id"`      // Client-assigned message identifier
	Role    string `json:"role"`    // "system", "user", "assistant"
	Content string `json:"content"` // Flattened message content
	Parts   []Part `json:"parts"`   // Structured content parts
}

// NewTextMessage builds a message carrying a single text part. The chat
// endpoint expects Content to mirror the text of the sole part, so both
// are populated from the same argument.
func NewTextMessage(id, role, text string) Message {
	return Message{
		ID:      id,
		Role:    role,
		Content: text,
		Parts:   []Part{{Type: "text", Text: text}},
	}
}
