package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/store"
)

// IdeaAddInput contains parameters for the IdeaAdd operation.
type IdeaAddInput struct {
	Category string
	Text     string
}

// IdeaAddOutput contains the result of the IdeaAdd operation.
type IdeaAddOutput struct {
	// Idea is the appended card; nil when the text trimmed to empty.
	Idea *board.Idea `json:"idea,omitempty"`

	Added bool `json:"added"`
}

// IdeaAdd appends a manual idea to a category. Whitespace-only text is a
// silent no-op: the board is untouched and Added is false.
func IdeaAdd(database *sql.DB, input IdeaAddInput) (*IdeaAddOutput, error) {
	cat, err := ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}

	idea, ok := b.AddIdea(cat, input.Text, board.SourceManual)
	if !ok {
		return &IdeaAddOutput{Added: false}, nil
	}

	if err := store.SaveBoard(database, b); err != nil {
		return nil, err
	}
	return &IdeaAddOutput{Idea: &idea, Added: true}, nil
}
