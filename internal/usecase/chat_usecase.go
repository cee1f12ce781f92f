package usecase

import "context"

// ChatInput defines a user query with its conversation context.
type ChatInput struct {
	Query   string
	Context string
}

// ChatOutput returns the assistant's reply.
type ChatOutput struct {
	Response string
}

// ChatUsecase defines the interface for the chat-assistant relay.
type ChatUsecase interface {
	// Chat forwards the query to the external assistant and returns its reply.
	Chat(ctx context.Context, input ChatInput) (*ChatOutput, error)
}
