// Package models maps short model aliases to the fully-qualified
// identifiers the chat backend routes on.
package models

// Alias pairs a short, human-chosen key with a fully-qualified model
// identifier.
type Alias struct {
	Key   string // e.g., "anthropic"
	Model string // e.g., "anthropic/claude-sonnet-4-20250514"
}

// Registry is an insertion-ordered collection of model aliases.
// Order is kept because it is part of the display contract.
type Registry struct {
	aliases []Alias
}

// Defaults returns the registry of models the chat endpoint is
// configured with.
func Defaults() Registry {
	return Registry{aliases: []Alias{
		{Key: "anthropic", Model: "anthropic/claude-sonnet-4-20250514"},
		{Key: "google", Model: "google/gemini-2.0-flash"},
		{Key: "openai", Model: "openai/gpt-4o"},
	}}
}

// All returns the aliases in insertion order.
func (r Registry) All() []Alias {
	out := make([]Alias, len(r.aliases))
	copy(out, r.aliases)
	return out
}

// Resolve returns the fully-qualified model identifier for key.
func (r Registry) Resolve(key string) (string, bool) {
	for _, a := range r.aliases {
		if a.Key == key {
			return a.Model, true
		}
	}
	return "", false
}
