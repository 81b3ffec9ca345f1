package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/store"
)

// IdeaListInput contains parameters for the IdeaList operation.
type IdeaListInput struct {
	// Category limits the listing to one category; empty lists all six.
	Category string
}

// CategoryIdeas is one category section in a listing.
type CategoryIdeas struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Ideas       []board.Idea `json:"ideas"`
}

// IdeaListOutput contains the result of the IdeaList operation.
type IdeaListOutput struct {
	Categories []CategoryIdeas `json:"categories"`
	Counts     Counts          `json:"counts"`
}

// IdeaList returns the board's ideas grouped by category, in category
// display order.
func IdeaList(database *sql.DB, input IdeaListInput) (*IdeaListOutput, error) {
	var only board.Category
	if input.Category != "" {
		cat, err := ValidateCategory(input.Category)
		if err != nil {
			return nil, err
		}
		only = cat
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}

	var sections []CategoryIdeas
	for _, info := range board.All() {
		if only != "" && info.ID != only {
			continue
		}
		sections = append(sections, CategoryIdeas{
			ID:          string(info.ID),
			Title:       info.Title,
			Description: info.Description,
			Ideas:       b.Ideas(info.ID),
		})
	}

	return &IdeaListOutput{
		Categories: sections,
		Counts:     Counts{Total: b.TotalCount(), Priority: b.PriorityCount()},
	}, nil
}
