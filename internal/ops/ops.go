package ops

import (
	"strings"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/errors"
)

// Counts summarizes board contents for status-style outputs.
type Counts struct {
	Total    int `json:"total"`
	Priority int `json:"priority"`
}

// CategoryStatus is the per-category line in a status report.
type CategoryStatus struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// ValidateCategory trims and validates a category id against the fixed set.
func ValidateCategory(id string) (board.Category, error) {
	cat := board.Category(strings.TrimSpace(id))
	if !cat.Valid() {
		return "", errors.NewNotFound("category " + id)
	}
	return cat, nil
}
