package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/chat"
	"github.com/calebhs/canvas/internal/config"
	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/profile"
)

// FallbackMessage is appended as the assistant turn when a conversational
// request fails at the transport level.
const FallbackMessage = "What aspects would you like to explore?"

// defaultReply stands in when a decoded reply carries no message text.
const defaultReply = "Tell me more about what you're working on."

// Turn is one role-tagged message in an outgoing transcript.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the endpoint's request body.
type chatRequest struct {
	System   string `json:"system"`
	Messages []Turn `json:"messages"`
}

// chatResponse is the endpoint's expected response body. Any other shape
// degrades to the fallback paths; it is never an uncaught failure.
type chatResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Client talks to the remote chat endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient builds a suggestion client from config. A nil logger disables
// diagnostics.
func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	httpClient := &http.Client{}
	if cfg.RequestTimeoutSecs > 0 {
		httpClient.Timeout = time.Duration(cfg.RequestTimeoutSecs) * time.Second
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey(),
		httpClient: httpClient,
		log:        log,
	}
}

// complete posts one request and returns the reply's text blob. A response
// whose JSON lacks the content path yields "" with no error; only transport
// failures and unparseable bodies are errors.
func (c *Client) complete(ctx context.Context, system string, messages []Turn) (string, error) {
	reqBody := chatRequest{System: system, Messages: messages}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.NewInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", errors.NewInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("suggestion request failed", zap.String("endpoint", c.endpoint), zap.Error(err))
		return "", errors.NewUpstreamUnavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewUpstreamUnavailable(err)
	}

	var apiResp chatResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.log.Warn("suggestion response was not JSON",
			zap.Int("status", resp.StatusCode), zap.Error(err))
		return "", errors.NewUpstreamUnavailable(err)
	}

	if len(apiResp.Content) == 0 {
		c.log.Warn("suggestion response missing content", zap.Int("status", resp.StatusCode))
		return "", nil
	}
	return apiResp.Content[0].Text, nil
}

// GenerateBoard runs bulk-generation mode: one synthetic user turn, a
// system prompt embedding the profile, and a reply expected to contain a
// JSON object keyed by category. The returned mapping feeds
// Board.BulkAppend. Extraction failures surface as MALFORMED_REPLY so the
// caller can log and leave the board unchanged.
func (c *Client) GenerateBoard(ctx context.Context, p *profile.Profile) (map[board.Category][]string, error) {
	text, err := c.complete(ctx, BulkSystemPrompt(p), []Turn{
		{Role: "user", Content: "Generate the ideas now."},
	})
	if err != nil {
		return nil, err
	}

	ideas, reason := DecodeBoardReply(text)
	if reason != "" {
		c.log.Warn("bulk reply could not be decoded", zap.String("reason", reason))
		return nil, errors.NewMalformedReply(reason)
	}
	return ideas, nil
}

// Reply is one decoded conversational answer.
type Reply struct {
	// Message is the assistant's conversational text
	Message string

	// Ideas holds the pending suggestions attached to the message
	Ideas []string
}

// Converse runs conversational mode for one category: the full prior
// transcript plus the just-appended user turn goes out, and the decoded
// reply comes back. Decode failures degrade to the raw text with no ideas;
// only transport failures return an error.
func (c *Client) Converse(ctx context.Context, p *profile.Profile, cat board.Category, transcript []chat.Message) (Reply, error) {
	turns := make([]Turn, 0, len(transcript))
	for _, m := range transcript {
		turns = append(turns, Turn{Role: string(m.Role), Content: m.Content})
	}

	text, err := c.complete(ctx, ChatSystemPrompt(p, cat), turns)
	if err != nil {
		return Reply{}, err
	}

	reply, reason := DecodeChatReply(text)
	if reason != "" {
		c.log.Debug("chat reply fell back to raw text",
			zap.String("category", string(cat)), zap.String("reason", reason))
	}
	return reply, nil
}
