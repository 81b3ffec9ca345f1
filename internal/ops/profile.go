package ops

import (
	"database/sql"

	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/profile"
	"github.com/calebhs/canvas/internal/store"
)

// ProfileUpdateInput contains parameters for the ProfileUpdate operation.
type ProfileUpdateInput struct {
	// Editable fields (nil = don't change)
	Role             *string
	Responsibilities *string

	// ToggleHelp flips each listed motivation id on or off, in order.
	ToggleHelp []string
}

// ProfileUpdateOutput contains the result of the ProfileUpdate operation.
type ProfileUpdateOutput struct {
	Profile  *profile.Profile `json:"profile"`
	Complete bool             `json:"complete"`
	Missing  []string         `json:"missing,omitempty"`
}

// ProfileUpdate applies intake edits to the stored profile. Values are
// accepted verbatim; completeness is only enforced by Generate.
func ProfileUpdate(database *sql.DB, input ProfileUpdateInput) (*ProfileUpdateOutput, error) {
	if input.Role == nil && input.Responsibilities == nil && len(input.ToggleHelp) == 0 {
		return nil, errors.NewInvalidRequest("at least one editable field must be provided")
	}

	for _, id := range input.ToggleHelp {
		if !validHelpOption(id) {
			return nil, errors.NewNotFound("motivation " + id)
		}
	}

	p, err := store.LoadProfile(database)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		p.SetRole(*input.Role)
	}
	if input.Responsibilities != nil {
		p.SetResponsibilities(*input.Responsibilities)
	}
	for _, id := range input.ToggleHelp {
		p.ToggleHelp(id)
	}

	if err := store.SaveProfile(database, p); err != nil {
		return nil, err
	}

	return &ProfileUpdateOutput{
		Profile:  p,
		Complete: p.Complete(),
		Missing:  p.Missing(),
	}, nil
}

// ProfileGetOutput contains the result of the ProfileGet operation.
type ProfileGetOutput struct {
	Profile     *profile.Profile     `json:"profile"`
	Complete    bool                 `json:"complete"`
	Missing     []string             `json:"missing,omitempty"`
	HelpOptions []profile.HelpOption `json:"help_options"`
}

// ProfileGet returns the stored profile plus the intake option set.
func ProfileGet(database *sql.DB) (*ProfileGetOutput, error) {
	p, err := store.LoadProfile(database)
	if err != nil {
		return nil, err
	}
	return &ProfileGetOutput{
		Profile:     p,
		Complete:    p.Complete(),
		Missing:     p.Missing(),
		HelpOptions: profile.HelpOptions(),
	}, nil
}

func validHelpOption(id string) bool {
	for _, opt := range profile.HelpOptions() {
		if opt.ID == id {
			return true
		}
	}
	return false
}
