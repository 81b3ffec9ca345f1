package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/store"
)

// IdeaEditInput contains parameters for the IdeaEdit operation.
type IdeaEditInput struct {
	Category string
	ID       string
	Text     string
}

// IdeaEditOutput contains the result of the IdeaEdit operation.
type IdeaEditOutput struct {
	Idea    *board.Idea `json:"idea,omitempty"`
	Updated bool        `json:"updated"`
}

// IdeaEdit replaces an idea's text. An edit that trims to empty keeps the
// original text; a missing idea is a no-op. Both report Updated false.
func IdeaEdit(database *sql.DB, input IdeaEditInput) (*IdeaEditOutput, error) {
	cat, err := ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}

	idea, ok := b.EditIdea(cat, input.ID, input.Text)
	if !ok {
		return &IdeaEditOutput{Updated: false}, nil
	}

	if err := store.SaveBoard(database, b); err != nil {
		return nil, err
	}
	return &IdeaEditOutput{Idea: &idea, Updated: true}, nil
}
