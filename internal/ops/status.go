package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/store"
)

// StatusOutput contains the result of the Status operation.
type StatusOutput struct {
	View            string           `json:"view"`
	ProfileComplete bool             `json:"profile_complete"`
	Counts          Counts           `json:"counts"`
	Categories      []CategoryStatus `json:"categories"`
}

// Status reports the current view, profile readiness, and per-category
// idea counts.
func Status(database *sql.DB) (*StatusOutput, error) {
	view, err := store.LoadView(database)
	if err != nil {
		return nil, err
	}
	p, err := store.LoadProfile(database)
	if err != nil {
		return nil, err
	}
	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryStatus, 0, len(board.All()))
	for _, info := range board.All() {
		categories = append(categories, CategoryStatus{
			ID:    string(info.ID),
			Title: info.Title,
			Count: len(b.Ideas(info.ID)),
		})
	}

	return &StatusOutput{
		View:            view,
		ProfileComplete: p.Complete(),
		Counts:          Counts{Total: b.TotalCount(), Priority: b.PriorityCount()},
		Categories:      categories,
	}, nil
}
