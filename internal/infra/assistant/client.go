// Package assistant implements the chat relay to the external assistant service.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

const defaultAskTimeout = 30 * time.Second

// client is a concrete implementation of the AssistantService interface
// over the assistant's HTTP endpoint.
type client struct {
	httpClient *http.Client
	url        string
}

// askRequest is the upstream request payload.
type askRequest struct {
	Query   string `json:"query"`
	Context string `json:"context"`
}

// askResponse is the upstream response payload.
type askResponse struct {
	Response string `json:"response"`
}

// NewClient is the constructor for the assistant client.
func NewClient(cfg *config.Config) (service.AssistantService, error) {
	if cfg.Assistant == nil || cfg.Assistant.URL == "" {
		return nil, errors.New("assistant url must be provided")
	}

	timeout := cfg.Assistant.Timeout
	if timeout <= 0 {
		timeout = defaultAskTimeout
	}

	return &client{
		httpClient: &http.Client{Timeout: timeout},
		url:        cfg.Assistant.URL,
	}, nil
}

// Ask forwards the query and conversation context verbatim and returns the
// assistant's reply. The relay holds no conversation state of its own.
func (c *client) Ask(ctx context.Context, query, conversationContext string) (string, error) {
	payload, err := json.Marshal(askRequest{
		Query:   query,
		Context: conversationContext,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode assistant request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to build assistant request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to reach assistant")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read assistant response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var reply askResponse
	if err := json.Unmarshal(body, &reply); err != nil {
		return "", errors.Wrap(err, "failed to decode assistant response")
	}

	return reply.Response, nil
}
