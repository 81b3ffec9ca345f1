package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/store"
)

// ChatAcceptInput contains parameters for the ChatAccept operation.
type ChatAcceptInput struct {
	Category  string
	MessageID string

	// Suggestion is the exact pending suggestion text to accept.
	Suggestion string
}

// ChatAcceptOutput contains the result of the ChatAccept operation.
type ChatAcceptOutput struct {
	Idea board.Idea `json:"idea"`
}

// ChatAccept promotes one pending suggestion onto the board. The suggestion
// is removed from its message only; identical text on other messages stays
// pending. Accepting the same suggestion twice fails with NOT_FOUND.
func ChatAccept(database *sql.DB, input ChatAcceptInput) (*ChatAcceptOutput, error) {
	cat, err := ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	s, err := store.LoadChat(database)
	if err != nil {
		return nil, err
	}

	if !s.ConsumeSuggestion(cat, input.MessageID, input.Suggestion) {
		return nil, errors.NewNotFound("suggestion on message " + input.MessageID)
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}
	idea, ok := b.AddIdea(cat, input.Suggestion, board.SourceAI)
	if !ok {
		return nil, errors.NewInvalidRequest("suggestion text is empty")
	}

	if err := store.SaveBoard(database, b); err != nil {
		return nil, err
	}
	if err := store.SaveChat(database, s); err != nil {
		return nil, err
	}

	return &ChatAcceptOutput{Idea: idea}, nil
}
