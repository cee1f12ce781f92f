// Package service defines interfaces for core, stateless domain logic.
package service

import "context"

// AssistantService defines the interface for the external chat assistant.
// The marketplace only relays conversations; it holds no assistant state.
type AssistantService interface {
	// Ask forwards a user query with its conversation context to the
	// assistant and returns the assistant's reply.
	Ask(ctx context.Context, query, conversationContext string) (string, error)
}
