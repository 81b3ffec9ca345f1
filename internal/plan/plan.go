package plan

import (
	"strings"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/profile"
)

// Filename is the exported document's default name.
const Filename = "ai-integration-plan.md"

// annotated pairs an idea with its category title for the flat priority
// list.
type annotated struct {
	category string
	text     string
}

// Render serializes the board into the plan document: starred ideas first
// as a flat category-annotated list, then the remaining ideas grouped under
// category headings. Pure over (profile, board); no storage or network.
//
// The board is scanned in enumeration order, so grouped sections appear in
// the order their categories are first encountered among unstarred ideas.
// Categories holding only starred ideas get no section of their own.
func Render(p *profile.Profile, b board.Board) string {
	var priority, other []annotated
	for _, cat := range board.All() {
		for _, idea := range b.Ideas(cat.ID) {
			entry := annotated{category: cat.Title, text: idea.Text}
			if idea.Priority {
				priority = append(priority, entry)
			} else {
				other = append(other, entry)
			}
		}
	}

	var md strings.Builder
	md.WriteString("# AI Integration Plan\n")
	md.WriteString("**" + p.Role + "**\n\n")
	md.WriteString("---\n\n")

	if len(priority) > 0 {
		md.WriteString("## ⭐ Priority Ideas\n\n")
		for _, entry := range priority {
			md.WriteString("- **" + entry.category + ":** " + entry.text + "\n")
		}
		md.WriteString("\n")
	}

	if len(other) > 0 {
		md.WriteString("## All Ideas\n\n")
		var order []string
		grouped := make(map[string][]string)
		for _, entry := range other {
			if _, seen := grouped[entry.category]; !seen {
				order = append(order, entry.category)
			}
			grouped[entry.category] = append(grouped[entry.category], entry.text)
		}
		for _, category := range order {
			md.WriteString("### " + category + "\n")
			for _, text := range grouped[category] {
				md.WriteString("- " + text + "\n")
			}
			md.WriteString("\n")
		}
	}

	return md.String()
}
