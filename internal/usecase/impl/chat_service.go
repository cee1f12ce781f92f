package impl

import (
	"context"
	"log/slog"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

type chatService struct {
	assistant service.AssistantService
	logger    *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Assistant service.AssistantService
	Logger    *slog.Logger
}

// NewChatService creates a new chat relay service instance.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		assistant: params.Assistant,
		logger:    params.Logger,
	}
}

// Chat forwards the query to the external assistant and returns its reply.
// Upstream failures are reported as a single opaque error; the cause is
// only logged.
func (s *chatService) Chat(ctx context.Context, input usecase.ChatInput) (*usecase.ChatOutput, error) {
	reply, err := s.assistant.Ask(ctx, input.Query, input.Context)
	if err != nil {
		s.logger.ErrorContext(ctx, "assistant request failed", slog.String("error", err.Error()))

		return nil, domainerrors.ErrAssistantUnavailable
	}

	return &usecase.ChatOutput{Response: reply}, nil
}
