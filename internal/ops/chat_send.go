package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/calebhs/canvas/internal/chat"
	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/store"
	"github.com/calebhs/canvas/internal/suggest"
)

// ChatSendInput contains parameters for the ChatSend operation.
type ChatSendInput struct {
	Category string
	Text     string
}

// ChatSendOutput contains the result of the ChatSend operation.
type ChatSendOutput struct {
	Category string         `json:"category"`
	Reply    chat.Message   `json:"reply"`
	Messages []chat.Message `json:"messages"`

	// Degraded reports that the endpoint failed and the reply is the
	// static fallback.
	Degraded bool `json:"degraded,omitempty"`
}

// ChatSend sends one user turn in a category's brainstorm conversation.
// The user turn is persisted before the network call, so a failed request
// still leaves it in the transcript; the failure itself degrades to a
// fallback assistant turn rather than an error.
func ChatSend(ctx context.Context, database *sql.DB, client *suggest.Client, input ChatSendInput) (*ChatSendOutput, error) {
	cat, err := ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.NewInvalidRequest("message text is required")
	}

	s, err := store.LoadChat(database)
	if err != nil {
		return nil, err
	}
	s.Open(cat)
	s.AppendUser(cat, text)
	if err := store.SaveChat(database, s); err != nil {
		return nil, err
	}

	p, err := store.LoadProfile(database)
	if err != nil {
		return nil, err
	}

	reply, err := client.Converse(ctx, p, cat, s.Messages(cat))
	if err != nil {
		if !errors.Is(err, errors.ErrUpstreamUnavailable) {
			return nil, err
		}
		msg := s.AppendAssistant(cat, suggest.FallbackMessage, nil)
		if err := store.SaveChat(database, s); err != nil {
			return nil, err
		}
		return &ChatSendOutput{
			Category: string(cat),
			Reply:    msg,
			Messages: s.Messages(cat),
			Degraded: true,
		}, nil
	}

	msg := s.AppendAssistant(cat, reply.Message, reply.Ideas)
	if err := store.SaveChat(database, s); err != nil {
		return nil, err
	}

	return &ChatSendOutput{
		Category: string(cat),
		Reply:    msg,
		Messages: s.Messages(cat),
	}, nil
}
