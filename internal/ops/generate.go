package ops

import (
	"context"
	"database/sql"

	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/store"
	"github.com/calebhs/canvas/internal/suggest"
)

// GenerateInput contains parameters for the Generate operation.
type GenerateInput struct{}

// GenerateOutput contains the result of the Generate operation.
type GenerateOutput struct {
	// Added is the number of ideas appended across all categories.
	Added int `json:"added"`

	// Degraded reports that the suggestion endpoint failed and the board
	// was left unchanged.
	Degraded bool `json:"degraded,omitempty"`

	Counts Counts `json:"counts"`
	View   string `json:"view"`
}

// Generate runs bulk idea generation against the stored profile. It refuses
// when the profile is incomplete. The view switches to canvas regardless of
// the remote outcome; a failed or undecodable reply leaves the board as it
// was and is reported as degraded rather than as an error.
func Generate(ctx context.Context, database *sql.DB, client *suggest.Client, input GenerateInput) (*GenerateOutput, error) {
	p, err := store.LoadProfile(database)
	if err != nil {
		return nil, err
	}
	if !p.Complete() {
		return nil, errors.NewProfileIncomplete(p.Missing())
	}

	if err := store.SaveView(database, store.ViewCanvas); err != nil {
		return nil, err
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		return nil, err
	}

	ideas, err := client.GenerateBoard(ctx, p)
	if err != nil {
		if errors.Is(err, errors.ErrUpstreamUnavailable) || errors.Is(err, errors.ErrMalformedReply) {
			return &GenerateOutput{
				Degraded: true,
				Counts:   Counts{Total: b.TotalCount(), Priority: b.PriorityCount()},
				View:     store.ViewCanvas,
			}, nil
		}
		return nil, err
	}

	added := b.BulkAppend(ideas)
	if err := store.SaveBoard(database, b); err != nil {
		return nil, err
	}

	return &GenerateOutput{
		Added:  added,
		Counts: Counts{Total: b.TotalCount(), Priority: b.PriorityCount()},
		View:   store.ViewCanvas,
	}, nil
}
