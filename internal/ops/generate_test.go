package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calebhs/canvas/internal/config"
	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/store"
	"github.com/calebhs/canvas/internal/suggest"
)

// newTestClient builds a suggestion client pointed at the given handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *suggest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.DefaultConfig()
	cfg.Endpoint = srv.URL
	return suggest.NewClient(cfg, nil)
}

// replyWith wraps text in the endpoint's response envelope.
func replyWith(text string) string {
	return `{"content":[{"text":` + jsonString(text) + `}]}`
}

func jsonString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func TestGenerate_RefusesIncompleteProfile(t *testing.T) {
	database := newTestDB(t)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("endpoint should not be called for an incomplete profile")
	})

	_, err := Generate(context.Background(), database, client, GenerateInput{})
	if !errors.Is(err, errors.ErrProfileIncomplete) {
		t.Fatalf("err = %v, want PROFILE_INCOMPLETE", err)
	}

	view, err := store.LoadView(database)
	if err != nil {
		t.Fatalf("LoadView failed: %v", err)
	}
	if view != store.ViewIntake {
		t.Errorf("view = %q, want intake after refused generation", view)
	}
}

func TestGenerate_AppendsDecodedIdeas(t *testing.T) {
	database := newTestDB(t)
	completeProfile(t, database)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(replyWith(`{"content": ["Draft weekly newsletter"], "coding": ["Script report pulls"]}`)))
	})

	output, err := Generate(context.Background(), database, client, GenerateInput{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if output.Added != 2 {
		t.Errorf("Added = %d, want 2", output.Added)
	}
	if output.View != store.ViewCanvas {
		t.Errorf("View = %q, want canvas", output.View)
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		t.Fatalf("LoadBoard failed: %v", err)
	}
	if len(b.Ideas("content")) != 1 || b.Ideas("content")[0].Text != "Draft weekly newsletter" {
		t.Errorf("content ideas = %v", b.Ideas("content"))
	}
}

func TestGenerate_IsAdditiveAcrossRuns(t *testing.T) {
	database := newTestDB(t)
	completeProfile(t, database)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(replyWith(`{"research": ["Summarize competitor launches"]}`)))
	})

	for i := 0; i < 2; i++ {
		if _, err := Generate(context.Background(), database, client, GenerateInput{}); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		t.Fatalf("LoadBoard failed: %v", err)
	}
	if len(b.Ideas("research")) != 2 {
		t.Errorf("research ideas = %d, want 2 after two runs", len(b.Ideas("research")))
	}
}

func TestGenerate_MalformedReplyLeavesBoardUntouched(t *testing.T) {
	database := newTestDB(t)
	completeProfile(t, database)
	if _, err := IdeaAdd(database, IdeaAddInput{Category: "ideation", Text: "Run a hack day"}); err != nil {
		t.Fatalf("IdeaAdd failed: %v", err)
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(replyWith("Sorry, I can only answer in prose.")))
	})

	output, err := Generate(context.Background(), database, client, GenerateInput{})
	if err != nil {
		t.Fatalf("Generate should degrade, not fail: %v", err)
	}
	if !output.Degraded {
		t.Error("Degraded should be true for an undecodable reply")
	}
	if output.Added != 0 {
		t.Errorf("Added = %d, want 0", output.Added)
	}

	b, err := store.LoadBoard(database)
	if err != nil {
		t.Fatalf("LoadBoard failed: %v", err)
	}
	if b.TotalCount() != 1 {
		t.Errorf("TotalCount = %d, want 1", b.TotalCount())
	}

	// The view still switches to canvas.
	view, err := store.LoadView(database)
	if err != nil {
		t.Fatalf("LoadView failed: %v", err)
	}
	if view != store.ViewCanvas {
		t.Errorf("view = %q, want canvas", view)
	}
}

func TestGenerate_TransportFailureDegrades(t *testing.T) {
	database := newTestDB(t)
	completeProfile(t, database)

	cfg := config.DefaultConfig()
	cfg.Endpoint = "http://127.0.0.1:1"
	client := suggest.NewClient(cfg, nil)

	output, err := Generate(context.Background(), database, client, GenerateInput{})
	if err != nil {
		t.Fatalf("Generate should degrade, not fail: %v", err)
	}
	if !output.Degraded {
		t.Error("Degraded should be true for a transport failure")
	}
}
