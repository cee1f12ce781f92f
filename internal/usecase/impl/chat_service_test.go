package impl

import (
	"context"
	"log/slog"
	"testing"

	domainerrors "marketplace/internal/domain/errors"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T) (usecase.ChatUsecase, *mockSvc.MockAssistantService) {
	mockAssistant := mockSvc.NewMockAssistantService(t)
	service := NewChatService(ChatServiceParams{
		Assistant: mockAssistant,
		Logger:    slog.Default(),
	})

	return service, mockAssistant
}

func TestChatService_Chat(t *testing.T) {
	service, mockAssistant := newChatService(t)

	ctx := context.Background()

	mockAssistant.EXPECT().
		Ask(ctx, "which course should I start with?", "browsing go-101").
		Return("Start with Go Fundamentals.", nil)

	output, err := service.Chat(ctx, usecase.ChatInput{
		Query:   "which course should I start with?",
		Context: "browsing go-101",
	})
	require.NoError(t, err)
	assert.Equal(t, "Start with Go Fundamentals.", output.Response)
}

func TestChatService_Chat_UpstreamFailure(t *testing.T) {
	service, mockAssistant := newChatService(t)

	ctx := context.Background()

	mockAssistant.EXPECT().
		Ask(ctx, "hello", "").
		Return("", errors.New("connection refused"))

	output, err := service.Chat(ctx, usecase.ChatInput{Query: "hello"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAssistantUnavailable)
}
