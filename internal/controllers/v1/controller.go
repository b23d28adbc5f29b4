// Package v1 implements the handlers for the v1 API.
package v1

import (
	"github.com/cediwise/backend/internal/assistant"
	"github.com/cediwise/backend/internal/market"
)

// Controller holds the services used by the handlers.
//
// Database access goes through models.DB.
type Controller struct {
	Advisor *assistant.Service // Single requests to the advisor
	Client  *assistant.Client  // Retrying requests with fallback
	Market  *market.Service
}
