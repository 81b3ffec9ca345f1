package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/store"
)

// IdeaRemoveInput contains parameters for the IdeaRemove operation.
type IdeaRemoveInput struct {
	Category string
	ID       string
}

// IdeaRemoveOutput contains the result of the IdeaRemove operation.
type IdeaRemoveOutput struct {
	Removed bool `json:"removed"`
}

// IdeaRemove deletes an idea from a category. A missing idea is a no-op.
func IdeaRemove(database *sql.DB, input IdeaRemoveInput) (*IdeaRemoveOutput, error) {
	cat, err := ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}

	if !b.RemoveIdea(cat, input.ID) {
		return &IdeaRemoveOutput{Removed: false}, nil
	}

	if err := store.SaveBoard(database, b); err != nil {
		return nil, err
	}
	return &IdeaRemoveOutput{Removed: true}, nil
}
