package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/chat"
	"github.com/calebhs/canvas/internal/store"
)

// ChatOpenInput contains parameters for the ChatOpen operation.
type ChatOpenInput struct {
	Category string
}

// ChatOpenOutput contains the result of the ChatOpen operation.
type ChatOpenOutput struct {
	Category string         `json:"category"`
	Messages []chat.Message `json:"messages"`

	// Seeded reports that this open created the transcript and its greeting.
	Seeded bool `json:"seeded"`
}

// ChatOpen returns a category's transcript, seeding the assistant greeting
// on first open. Reopening never re-seeds.
func ChatOpen(database *sql.DB, input ChatOpenInput) (*ChatOpenOutput, error) {
	cat, err := ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	s, err := store.LoadChat(database)
	if err != nil {
		return nil, err
	}

	msgs, seeded := s.Open(cat)
	if seeded {
		if err := store.SaveChat(database, s); err != nil {
			return nil, err
		}
	}

	return &ChatOpenOutput{
		Category: string(cat),
		Messages: msgs,
		Seeded:   seeded,
	}, nil
}
