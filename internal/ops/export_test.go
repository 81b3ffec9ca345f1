package ops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExport_WritesMarkdownPlan(t *testing.T) {
	database := newTestDB(t)
	completeProfile(t, database)

	added, err := IdeaAdd(database, IdeaAddInput{Category: "automation", Text: "Auto-route inbound tickets"})
	if err != nil {
		t.Fatalf("IdeaAdd failed: %v", err)
	}
	if _, err := IdeaStar(database, IdeaStarInput{Category: "automation", ID: added.Idea.ID}); err != nil {
		t.Fatalf("IdeaStar failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "plan.md")
	output, err := Export(database, ExportInput{Path: path})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if output.Path != path {
		t.Errorf("Path = %q", output.Path)
	}
	if output.Counts.Total != 1 || output.Counts.Priority != 1 {
		t.Errorf("Counts = %+v", output.Counts)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# AI Integration Plan\n**Marketing Director**\n") {
		t.Errorf("header = %q", content[:min(len(content), 60)])
	}
	if !strings.Contains(content, "## ⭐ Priority Ideas") {
		t.Error("missing priority section")
	}
	if !strings.Contains(content, "- **Task Automation:** Auto-route inbound tickets") {
		t.Error("missing priority entry")
	}
}

func TestExport_ReplacesPreviousFile(t *testing.T) {
	database := newTestDB(t)
	completeProfile(t, database)

	path := filepath.Join(t.TempDir(), "plan.md")
	if _, err := Export(database, ExportInput{Path: path}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if _, err := IdeaAdd(database, IdeaAddInput{Category: "data", Text: "Forecast pipeline health"}); err != nil {
		t.Fatalf("IdeaAdd failed: %v", err)
	}
	if _, err := Export(database, ExportInput{Path: path}); err != nil {
		t.Fatalf("second Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "Forecast pipeline health") {
		t.Error("re-export should replace the previous file")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %q", e.Name())
		}
	}
}
