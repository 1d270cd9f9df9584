// Package retell implements the voice-AI provider boundary against the
// Retell v2 API. The call-log listing is a pure read path and never fails:
// every failure mode degrades to a fixed mock list.
package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"autopilot/config"
	"autopilot/internal/domain/entity"
	"autopilot/internal/domain/service"
)

const defaultRequestTimeout = 30 * time.Second

// mockCalls is the fallback served when the API key is missing or the
// upstream call fails, so the communications page always has content.
var mockCalls = []entity.CallLog{
	{
		CallID:         "mock_1",
		AgentID:        "agent_123",
		CustomerPhone:  "+15550101",
		CallStatus:     "ended",
		StartTimestamp: time.Now().Add(-100 * time.Second).UnixMilli(),
		DurationMs:     120000,
		Transcript:     "Hello, I'd like to book an appointment...",
		RecordingURL:   "#",
		Sentiment:      "positive",
	},
	{
		CallID:         "mock_2",
		AgentID:        "agent_123",
		CustomerPhone:  "+15550199",
		CallStatus:     "ended",
		StartTimestamp: time.Now().Add(-500 * time.Second).UnixMilli(),
		DurationMs:     45000,
		Transcript:     "Please remove me from your list.",
		RecordingURL:   "#",
		Sentiment:      "negative",
	},
}

// Client calls the Retell API. It implements service.VoiceLogService.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Retell API client from configuration. An empty API key
// is allowed; ListCalls then always serves the mock list.
func NewClient(cfg *config.Config, logger *slog.Logger) service.VoiceLogService {
	client := &Client{
		baseURL:    "https://api.retellai.com",
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}

	if cfg.Retell != nil {
		client.apiKey = cfg.Retell.APIKey
		if cfg.Retell.BaseURL != "" {
			client.baseURL = strings.TrimRight(cfg.Retell.BaseURL, "/")
		}
	}

	return client
}

// ListCalls fetches the most recent calls, newest first. The v2 listing
// endpoint requires POST with the limit and sort order in the JSON body.
func (c *Client) ListCalls(ctx context.Context, limit int) service.Outcome[[]entity.CallLog] {
	if c.apiKey == "" {
		c.logger.Warn("Retell API key not configured, serving mock call log")

		return service.Fallback(mockCalls)
	}

	reqBody, err := json.Marshal(map[string]any{
		"limit":      limit,
		"sort_order": "descending",
	})
	if err != nil {
		c.logger.Error("Retell request encode failed", slog.Any("error", err))

		return service.Fallback(mockCalls)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/list-calls", bytes.NewReader(reqBody))
	if err != nil {
		c.logger.Error("Retell request build failed", slog.Any("error", err))

		return service.Fallback(mockCalls)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Retell call log fetch failed", slog.Any("error", err))

		return service.Fallback(mockCalls)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Retell API returned error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return service.Fallback(mockCalls)
	}

	var calls []entity.CallLog
	if err := json.NewDecoder(resp.Body).Decode(&calls); err != nil {
		c.logger.Error("Retell response decode failed", slog.Any("error", err))

		return service.Fallback(mockCalls)
	}

	return service.OK(calls)
}
