package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/store"
)

// ResetOutput contains the result of the Reset operation.
type ResetOutput struct {
	View string `json:"view"`
}

// Reset clears every state slice: empty profile, empty board, empty chat
// state, intake view.
func Reset(database *sql.DB) (*ResetOutput, error) {
	if err := store.Reset(database); err != nil {
		return nil, err
	}
	return &ResetOutput{View: store.ViewIntake}, nil
}
