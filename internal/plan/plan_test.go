package plan

import (
	"strings"
	"testing"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/profile"
)

func testProfile() *profile.Profile {
	p := profile.New()
	p.SetRole("Operations Manager")
	return p
}

func TestRender_PrioritySectionBeforeGrouped(t *testing.T) {
	b := board.New()
	starred, _ := b.AddIdea(board.CategoryContent, "Draft board updates", board.SourceAI)
	b.ToggleStar(board.CategoryContent, starred.ID)
	b.AddIdea(board.CategoryResearch, "Monitor competitor launches", board.SourceManual)

	doc := Render(testProfile(), b)

	if !strings.HasPrefix(doc, "# AI Integration Plan\n**Operations Manager**\n\n---\n\n") {
		t.Errorf("unexpected document header:\n%s", doc)
	}

	priorityIdx := strings.Index(doc, "## ⭐ Priority Ideas")
	allIdx := strings.Index(doc, "## All Ideas")
	if priorityIdx == -1 || allIdx == -1 || priorityIdx > allIdx {
		t.Fatalf("priority section must precede grouped section:\n%s", doc)
	}

	if !strings.Contains(doc, "- **Content Creation:** Draft board updates\n") {
		t.Errorf("priority entry missing category annotation:\n%s", doc)
	}
	if !strings.Contains(doc, "### Research & Synthesis\n- Monitor competitor launches\n") {
		t.Errorf("research subsection missing:\n%s", doc)
	}
}

func TestRender_EmptyBoardHasNoSections(t *testing.T) {
	doc := Render(testProfile(), board.New())
	if strings.Contains(doc, "Priority Ideas") || strings.Contains(doc, "All Ideas") {
		t.Errorf("empty board should render header only:\n%s", doc)
	}
}

func TestRender_StarredOnlyCategoryGetsNoSection(t *testing.T) {
	b := board.New()
	starred, _ := b.AddIdea(board.CategoryData, "KPI digest", board.SourceManual)
	b.ToggleStar(board.CategoryData, starred.ID)

	doc := Render(testProfile(), b)
	if strings.Contains(doc, "### Data & Insights") {
		t.Errorf("category with only starred ideas should have no grouped section:\n%s", doc)
	}
	if !strings.Contains(doc, "- **Data & Insights:** KPI digest") {
		t.Errorf("starred idea missing from priority list:\n%s", doc)
	}
}

func TestRender_GroupedSectionsInFirstEncounterOrder(t *testing.T) {
	b := board.New()
	b.AddIdea(board.CategoryIdeation, "Scenario planning", board.SourceManual)
	b.AddIdea(board.CategoryContent, "Draft emails", board.SourceManual)

	doc := Render(testProfile(), b)
	contentIdx := strings.Index(doc, "### Content Creation")
	ideationIdx := strings.Index(doc, "### Strategy & Ideation")
	if contentIdx == -1 || ideationIdx == -1 {
		t.Fatalf("expected both sections:\n%s", doc)
	}
	// Scan order is the fixed enumeration, so content comes first even
	// though ideation was added first.
	if contentIdx > ideationIdx {
		t.Errorf("sections out of scan order:\n%s", doc)
	}
}

func TestRender_Deterministic(t *testing.T) {
	b := board.New()
	b.AddIdea(board.CategoryContent, "One", board.SourceManual)
	b.AddIdea(board.CategoryCoding, "Two", board.SourceAI)
	s, _ := b.AddIdea(board.CategoryCoding, "Three", board.SourceAI)
	b.ToggleStar(board.CategoryCoding, s.ID)

	p := testProfile()
	first := Render(p, b)
	for i := 0; i < 10; i++ {
		if got := Render(p, b); got != first {
			t.Fatal("Render is not deterministic for the same inputs")
		}
	}
}
