package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/calebhs/canvas/internal/config"
	"github.com/calebhs/canvas/internal/store"
	"github.com/calebhs/canvas/internal/suggest"
)

// testSetup creates a temporary database and a client pointed at the given
// handler. A nil handler wires an unreachable endpoint.
func testSetup(t *testing.T, handler http.HandlerFunc) (*sql.DB, *Handlers) {
	t.Helper()

	database, err := store.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cfg := config.DefaultConfig()
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		cfg.Endpoint = srv.URL
	} else {
		cfg.Endpoint = "http://127.0.0.1:1"
	}

	client := suggest.NewClient(cfg, nil)
	return database, NewHandlers(database, cfg, client)
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// textReply wraps text in the suggestion endpoint's response envelope.
func textReply(text string) []byte {
	data, _ := json.Marshal(map[string]any{
		"content": []map[string]string{{"text": text}},
	})
	return data
}

// resultPayload decodes a success result's JSON content.
func resultPayload(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is not TextContent")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal result: %v", err)
	}
	return payload
}

// completeIntake fills the profile through the profile_set handler.
func completeIntake(t *testing.T, h *Handlers) {
	t.Helper()
	result, err := h.HandleProfileSet(context.Background(), makeRequest(map[string]any{
		"role":             "Operations Lead",
		"responsibilities": "Vendor management and process reviews",
		"toggle_help":      []any{"time", "decisions"},
	}))
	if err != nil {
		t.Fatalf("profile_set returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("profile_set failed: %v", extractErrorMessage(result))
	}
}

func TestHandleProfileSet(t *testing.T) {
	_, h := testSetup(t, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
	}{
		{
			name: "set role only",
			args: map[string]any{"role": "Product Manager"},
		},
		{
			name:      "no fields",
			args:      map[string]any{},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
		{
			name:      "unknown motivation",
			args:      map[string]any{"toggle_help": []any{"fame"}},
			wantError: true,
			errorCode: "NOT_FOUND",
		},
		{
			name: "toggle motivations",
			args: map[string]any{"toggle_help": []any{"time", "scale"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleProfileSet(ctx, makeRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
			} else if result.IsError {
				t.Errorf("expected success, got error: %v", extractErrorMessage(result))
			}
		})
	}
}

func TestHandleProfileGet(t *testing.T) {
	_, h := testSetup(t, nil)
	ctx := context.Background()

	completeIntake(t, h)

	result, err := h.HandleProfileGet(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	payload := resultPayload(t, result)
	if payload["complete"] != true {
		t.Errorf("complete = %v, want true", payload["complete"])
	}
	options, ok := payload["help_options"].([]any)
	if !ok || len(options) != 6 {
		t.Errorf("help_options = %v, want 6 entries", payload["help_options"])
	}
}

func TestHandleIdeaLifecycle(t *testing.T) {
	_, h := testSetup(t, nil)
	ctx := context.Background()

	// Add
	result, err := h.HandleIdeaAdd(ctx, makeRequest(map[string]any{
		"category": "automation",
		"text":     "Auto-schedule standups",
	}))
	if err != nil {
		t.Fatalf("idea_add returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("idea_add failed: %v", extractErrorMessage(result))
	}
	payload := resultPayload(t, result)
	idea := payload["idea"].(map[string]any)
	ideaID := idea["id"].(string)

	// Star
	result, err = h.HandleIdeaStar(ctx, makeRequest(map[string]any{
		"category": "automation",
		"id":       ideaID,
	}))
	if err != nil {
		t.Fatalf("idea_star returned error: %v", err)
	}
	starred := resultPayload(t, result)["idea"].(map[string]any)
	if starred["priority"] != true {
		t.Errorf("priority = %v, want true", starred["priority"])
	}

	// Edit
	result, err = h.HandleIdeaEdit(ctx, makeRequest(map[string]any{
		"category": "automation",
		"id":       ideaID,
		"text":     "Auto-schedule standups and retros",
	}))
	if err != nil {
		t.Fatalf("idea_edit returned error: %v", err)
	}
	if resultPayload(t, result)["updated"] != true {
		t.Error("updated should be true")
	}

	// List
	result, err = h.HandleIdeaList(ctx, makeRequest(map[string]any{"category": "automation"}))
	if err != nil {
		t.Fatalf("idea_list returned error: %v", err)
	}
	categories := resultPayload(t, result)["categories"].([]any)
	if len(categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(categories))
	}

	// Remove
	result, err = h.HandleIdeaRemove(ctx, makeRequest(map[string]any{
		"category": "automation",
		"id":       ideaID,
	}))
	if err != nil {
		t.Fatalf("idea_remove returned error: %v", err)
	}
	if resultPayload(t, result)["removed"] != true {
		t.Error("removed should be true")
	}
}

func TestHandleIdeaAdd_Errors(t *testing.T) {
	_, h := testSetup(t, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		errorCode string
	}{
		{
			name:      "unknown category",
			args:      map[string]any{"category": "finance", "text": "x"},
			errorCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleIdeaAdd(ctx, makeRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if !result.IsError {
				t.Fatalf("expected error result")
			}
			assertErrorCode(t, result, tt.errorCode)
		})
	}

	// Whitespace-only text is a silent no-op, not an error.
	result, err := h.HandleIdeaAdd(ctx, makeRequest(map[string]any{
		"category": "content", "text": "   ",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("whitespace add should not error: %v", extractErrorMessage(result))
	}
	if resultPayload(t, result)["added"] != false {
		t.Error("added should be false")
	}
}

func TestHandleBoardGenerate(t *testing.T) {
	_, h := testSetup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(textReply(`{"research": ["Digest industry newsletters"], "ideation": ["Quarterly scenario planning"]}`))
	})
	ctx := context.Background()

	// Incomplete profile refuses.
	result, err := h.HandleBoardGenerate(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected PROFILE_INCOMPLETE before intake")
	}
	assertErrorCode(t, result, "PROFILE_INCOMPLETE")

	completeIntake(t, h)

	result, err = h.HandleBoardGenerate(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("board_generate failed: %v", extractErrorMessage(result))
	}
	payload := resultPayload(t, result)
	if payload["added"] != float64(2) {
		t.Errorf("added = %v, want 2", payload["added"])
	}
	if payload["view"] != "canvas" {
		t.Errorf("view = %v, want canvas", payload["view"])
	}
}

func TestHandleChatFlow(t *testing.T) {
	_, h := testSetup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(textReply(`{"message": "Two places to start.", "ideas": ["Template your briefs", "Batch your reviews"]}`))
	})
	ctx := context.Background()
	completeIntake(t, h)

	// Open seeds the greeting.
	result, err := h.HandleChatOpen(ctx, makeRequest(map[string]any{"category": "content"}))
	if err != nil {
		t.Fatalf("chat_open returned error: %v", err)
	}
	payload := resultPayload(t, result)
	if payload["seeded"] != true {
		t.Error("first open should seed")
	}

	// Send returns the decoded reply.
	result, err = h.HandleChatSend(ctx, makeRequest(map[string]any{
		"category": "content",
		"text":     "Where should I start?",
	}))
	if err != nil {
		t.Fatalf("chat_send returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("chat_send failed: %v", extractErrorMessage(result))
	}
	payload = resultPayload(t, result)
	reply := payload["reply"].(map[string]any)
	suggestions := reply["suggestions"].([]any)
	if len(suggestions) != 2 {
		t.Fatalf("suggestions = %v, want 2", suggestions)
	}

	// Accept one suggestion onto the board.
	result, err = h.HandleChatAccept(ctx, makeRequest(map[string]any{
		"category":   "content",
		"message_id": reply["id"],
		"suggestion": suggestions[0],
	}))
	if err != nil {
		t.Fatalf("chat_accept returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("chat_accept failed: %v", extractErrorMessage(result))
	}
	idea := resultPayload(t, result)["idea"].(map[string]any)
	if idea["source"] != "ai" {
		t.Errorf("source = %v, want ai", idea["source"])
	}

	// Accepting it again fails.
	result, err = h.HandleChatAccept(ctx, makeRequest(map[string]any{
		"category":   "content",
		"message_id": reply["id"],
		"suggestion": suggestions[0],
	}))
	if err != nil {
		t.Fatalf("chat_accept returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("double accept should fail")
	}
	assertErrorCode(t, result, "NOT_FOUND")
}

func TestHandleChatSend_EmptyText(t *testing.T) {
	_, h := testSetup(t, nil)

	result, err := h.HandleChatSend(context.Background(), makeRequest(map[string]any{
		"category": "content",
		"text":     "  ",
	}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected INVALID_REQUEST")
	}
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestHandleStatusViewReset(t *testing.T) {
	_, h := testSetup(t, nil)
	ctx := context.Background()

	result, err := h.HandleViewSet(ctx, makeRequest(map[string]any{"view": "canvas"}))
	if err != nil {
		t.Fatalf("view_set returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("view_set failed: %v", extractErrorMessage(result))
	}

	result, err = h.HandleBoardStatus(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("board_status returned error: %v", err)
	}
	payload := resultPayload(t, result)
	if payload["view"] != "canvas" {
		t.Errorf("view = %v, want canvas", payload["view"])
	}
	categories := payload["categories"].([]any)
	if len(categories) != 6 {
		t.Errorf("categories = %d, want 6", len(categories))
	}

	result, err = h.HandleCanvasReset(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("canvas_reset returned error: %v", err)
	}
	if resultPayload(t, result)["view"] != "intake" {
		t.Error("reset should return to intake")
	}
}

func TestHandlePlanExport(t *testing.T) {
	_, h := testSetup(t, nil)
	ctx := context.Background()
	completeIntake(t, h)

	path := t.TempDir() + "/plan.md"
	result, err := h.HandlePlanExport(ctx, makeRequest(map[string]any{"path": path}))
	if err != nil {
		t.Fatalf("plan_export returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("plan_export failed: %v", extractErrorMessage(result))
	}
	if resultPayload(t, result)["path"] != path {
		t.Errorf("path = %v", resultPayload(t, result)["path"])
	}
}

func TestToolRegistryCoversAllTools(t *testing.T) {
	names := AllToolNames()
	if len(names) != 15 {
		t.Errorf("tool count = %d, want 15", len(names))
	}
	for name, entry := range toolRegistry {
		if entry.def.Name != name {
			t.Errorf("tool %q registered under mismatched name %q", entry.def.Name, name)
		}
	}
}

// assertErrorCode checks the error code in an error result payload.
func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	if len(result.Content) == 0 {
		t.Errorf("no content in error result")
		return
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Errorf("content is not TextContent")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Errorf("failed to unmarshal error payload: %v", err)
		return
	}

	errorObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Errorf("no error object in payload")
		return
	}

	code, ok := errorObj["code"].(string)
	if !ok {
		t.Errorf("no code in error object")
		return
	}
	if code != expectedCode {
		t.Errorf("error code = %q, want %q", code, expectedCode)
	}
}

func extractErrorMessage(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return "<no content>"
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "<not text content>"
	}

	return text.Text
}
