package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/store"
)

// ViewSetInput contains parameters for the ViewSet operation.
type ViewSetInput struct {
	View string
}

// ViewSetOutput contains the result of the ViewSet operation.
type ViewSetOutput struct {
	View string `json:"view"`
}

// ViewSet switches between the intake and canvas views.
func ViewSet(database *sql.DB, input ViewSetInput) (*ViewSetOutput, error) {
	if input.View != store.ViewIntake && input.View != store.ViewCanvas {
		return nil, errors.NewInvalidRequest("view must be \"intake\" or \"canvas\"")
	}
	if err := store.SaveView(database, input.View); err != nil {
		return nil, err
	}
	return &ViewSetOutput{View: input.View}, nil
}
