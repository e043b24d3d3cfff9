// Package payload builds the reference payload for the chat endpoint
// and renders it as a human-readable report.
package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/craftui/chatpayload/pkg/llm"
	"github.com/craftui/chatpayload/pkg/models"
)

const (
	sampleID      = "test-1"
	sampleText    = "Hello, can you help me create a simple button component?"
	sampleModel   = "anthropic"
	sampleProject = "test-project"
)

// separator matches the width the chat API's own test output uses.
var separator = strings.Repeat("=", 50)

// Sample returns the reference request for POST /api/chat.
func Sample() llm.ChatRequest {
	return llm.ChatRequest{
		Messages:  []llm.Message{llm.NewTextMessage(sampleID, "user", sampleText)},
		Model:     sampleModel,
		ProjectID: sampleProject,
	}
}

// Render writes the payload report to w: the request as 2-space
// indented JSON, a hint on how to exercise the endpoint, and the
// configured model table. Output is deterministic for a given request
// and registry.
func Render(w io.Writer, req llm.ChatRequest, reg models.Registry) error {
	body, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	if _, err := fmt.Fprintf(w, "Chat API Test Payload:\n%s\n", body); err != nil {
		return fmt.Errorf("could not write payload: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\n%s\nTo test the API, send a POST request to /api/chat with this payload\n%s\n", separator, separator); err != nil {
		return fmt.Errorf("could not write usage hint: %w", err)
	}

	if _, err := fmt.Fprintln(w, "\nConfigured Models:"); err != nil {
		return fmt.Errorf("could not write model table: %w", err)
	}
	for _, a := range reg.All() {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", a.Key, a.Model); err != nil {
			return fmt.Errorf("could not write model table: %w", err)
		}
	}

	return nil
}
