package profile

import (
	"fmt"
	"strings"
)

// Profile holds the user's intake answers. All fields are accepted verbatim;
// completeness is checked by the generation gate, not on write.
type Profile struct {
	// Role is the user's job title, e.g. "Marketing Director"
	Role string `json:"role"`

	// HelpWith is the set of selected motivation ids
	HelpWith []string `json:"helpWith"`

	// Responsibilities is the free-text answer about day-to-day work
	Responsibilities string `json:"responsibilities"`
}

// HelpOption is one selectable motivation on the intake form.
type HelpOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// helpOptions is the closed set of intake motivations, in display order.
var helpOptions = []HelpOption{
	{"time", "Save time on repetitive work"},
	{"quality", "Improve the quality of what I produce"},
	{"capability", "Take on things I can't do today"},
	{"decisions", "Make better decisions with data"},
	{"overload", "Keep up with information overload"},
	{"scale", "Scale my impact beyond my capacity"},
}

// HelpOptions returns the intake motivations in display order.
func HelpOptions() []HelpOption {
	return helpOptions
}

// New returns an empty profile.
func New() *Profile {
	return &Profile{HelpWith: []string{}}
}

// SetRole stores the role verbatim.
func (p *Profile) SetRole(role string) {
	p.Role = role
}

// SetResponsibilities stores the responsibilities text verbatim.
func (p *Profile) SetResponsibilities(text string) {
	p.Responsibilities = text
}

// ToggleHelp adds the motivation id to the selected set, or removes it if
// already selected. Selection order is preserved for the prompt summary.
func (p *Profile) ToggleHelp(id string) {
	for i, h := range p.HelpWith {
		if h == id {
			p.HelpWith = append(p.HelpWith[:i:i], p.HelpWith[i+1:]...)
			return
		}
	}
	p.HelpWith = append(p.HelpWith, id)
}

// Missing returns the intake fields still required before generation can
// run, in form order. An empty result means the profile is complete.
func (p *Profile) Missing() []string {
	var missing []string
	if strings.TrimSpace(p.Role) == "" {
		missing = append(missing, "role")
	}
	if len(p.HelpWith) == 0 {
		missing = append(missing, "help_with")
	}
	if strings.TrimSpace(p.Responsibilities) == "" {
		missing = append(missing, "responsibilities")
	}
	return missing
}

// Complete reports whether all three intake answers are present.
func (p *Profile) Complete() bool {
	return len(p.Missing()) == 0
}

// HelpLabels joins the labels of the selected motivations. Unknown ids are
// skipped.
func (p *Profile) HelpLabels() string {
	labels := make([]string, 0, len(p.HelpWith))
	for _, id := range p.HelpWith {
		for _, opt := range helpOptions {
			if opt.ID == id {
				labels = append(labels, opt.Label)
				break
			}
		}
	}
	return strings.Join(labels, ", ")
}

// PromptContext renders the profile summary embedded in conversational
// system prompts.
func (p *Profile) PromptContext() string {
	return fmt.Sprintf(`
MANAGER PROFILE:
- Role: %s
- What they want help with: %s
- Key Responsibilities: %s

Provide specific, actionable suggestions based on this context. Be concise. Each idea should be under 40 words.`,
		p.Role, p.HelpLabels(), p.Responsibilities)
}
