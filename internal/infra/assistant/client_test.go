package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssistantConfig(url string) *config.Config {
	return &config.Config{
		Assistant: &config.AssistantConfig{
			URL:     url,
			Timeout: 2 * time.Second,
		},
	}
}

func TestClient_Ask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req askRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "what does this course cover?", req.Query)
		assert.Equal(t, "previous turn", req.Context)

		json.NewEncoder(w).Encode(askResponse{Response: "It covers Go basics."})
	}))
	defer server.Close()

	assistant, err := NewClient(newAssistantConfig(server.URL))
	require.NoError(t, err)

	reply, err := assistant.Ask(context.Background(), "what does this course cover?", "previous turn")
	assert.NoError(t, err)
	assert.Equal(t, "It covers Go basics.", reply)
}

func TestClient_AskUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	assistant, err := NewClient(newAssistantConfig(server.URL))
	require.NoError(t, err)

	reply, err := assistant.Ask(context.Background(), "hello", "")
	assert.Error(t, err)
	assert.Empty(t, reply)
}

func TestNewClient_MissingURL(t *testing.T) {
	assistant, err := NewClient(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, assistant)
}
