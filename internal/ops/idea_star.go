package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/store"
)

// IdeaStarInput contains parameters for the IdeaStar operation.
type IdeaStarInput struct {
	Category string
	ID       string
}

// IdeaStarOutput contains the result of the IdeaStar operation.
type IdeaStarOutput struct {
	Idea    *board.Idea `json:"idea,omitempty"`
	Toggled bool        `json:"toggled"`
}

// IdeaStar flips an idea's priority flag. A missing idea is a no-op.
func IdeaStar(database *sql.DB, input IdeaStarInput) (*IdeaStarOutput, error) {
	cat, err := ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}

	idea, ok := b.ToggleStar(cat, input.ID)
	if !ok {
		return &IdeaStarOutput{Toggled: false}, nil
	}

	if err := store.SaveBoard(database, b); err != nil {
		return nil, err
	}
	return &IdeaStarOutput{Idea: &idea, Toggled: true}, nil
}
