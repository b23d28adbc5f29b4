// Package llm provides access to the language model that answers
// financial advice questions.
package llm

import (
	"context"
	"errors"

	"github.com/cediwise/backend/internal/types"
)

// ErrNotConfigured is returned when no API key is configured.
var ErrNotConfigured = errors.New("AI service API key not configured")

// Request is a single completion request.
type Request struct {
	System  string          // System prompt
	History []types.Message // Earlier messages of the conversation, oldest first
	Prompt  string          // The new user message
}

// Completer generates answers with a language model.
type Completer interface {
	// Complete returns the answer of the model to the request.
	Complete(context.Context, Request) (string, error)

	// Ping performs a lightweight request to verify that the model
	// provider is reachable and the credentials are valid.
	Ping(context.Context) error
}
