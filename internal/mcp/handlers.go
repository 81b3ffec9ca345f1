package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/calebhs/canvas/internal/config"
	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/ops"
	"github.com/calebhs/canvas/internal/suggest"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db     *sql.DB
	cfg    *config.Config
	client *suggest.Client
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config, client *suggest.Client) *Handlers {
	return &Handlers{db: db, cfg: cfg, client: client}
}

// Request types for each tool

// ProfileSetRequest represents the arguments for profile_set.
type ProfileSetRequest struct {
	Role             *string  `json:"role,omitempty"`
	Responsibilities *string  `json:"responsibilities,omitempty"`
	ToggleHelp       []string `json:"toggle_help,omitempty"`
}

// IdeaAddRequest represents the arguments for idea_add.
type IdeaAddRequest struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// IdeaEditRequest represents the arguments for idea_edit.
type IdeaEditRequest struct {
	Category string `json:"category"`
	ID       string `json:"id"`
	Text     string `json:"text"`
}

// IdeaRefRequest represents the arguments for idea_remove and idea_star.
type IdeaRefRequest struct {
	Category string `json:"category"`
	ID       string `json:"id"`
}

// IdeaListRequest represents the arguments for idea_list.
type IdeaListRequest struct {
	Category string `json:"category,omitempty"`
}

// CategoryRequest represents the arguments for chat_open.
type CategoryRequest struct {
	Category string `json:"category"`
}

// ChatSendRequest represents the arguments for chat_send.
type ChatSendRequest struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// ChatAcceptRequest represents the arguments for chat_accept.
type ChatAcceptRequest struct {
	Category   string `json:"category"`
	MessageID  string `json:"message_id"`
	Suggestion string `json:"suggestion"`
}

// PlanExportRequest represents the arguments for plan_export.
type PlanExportRequest struct {
	Path string `json:"path,omitempty"`
}

// ViewSetRequest represents the arguments for view_set.
type ViewSetRequest struct {
	View string `json:"view"`
}

// Handler implementations

// HandleProfileSet handles the profile_set tool call.
func (h *Handlers) HandleProfileSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ProfileSetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ProfileUpdate(h.db, ops.ProfileUpdateInput{
		Role:             input.Role,
		Responsibilities: input.Responsibilities,
		ToggleHelp:       input.ToggleHelp,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleProfileGet handles the profile_get tool call.
func (h *Handlers) HandleProfileGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ProfileGet(h.db)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleIdeaAdd handles the idea_add tool call.
func (h *Handlers) HandleIdeaAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IdeaAddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.IdeaAdd(h.db, ops.IdeaAddInput{
		Category: input.Category,
		Text:     input.Text,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleIdeaEdit handles the idea_edit tool call.
func (h *Handlers) HandleIdeaEdit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IdeaEditRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.IdeaEdit(h.db, ops.IdeaEditInput{
		Category: input.Category,
		ID:       input.ID,
		Text:     input.Text,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleIdeaRemove handles the idea_remove tool call.
func (h *Handlers) HandleIdeaRemove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IdeaRefRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.IdeaRemove(h.db, ops.IdeaRemoveInput{
		Category: input.Category,
		ID:       input.ID,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleIdeaStar handles the idea_star tool call.
func (h *Handlers) HandleIdeaStar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IdeaRefRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.IdeaStar(h.db, ops.IdeaStarInput{
		Category: input.Category,
		ID:       input.ID,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleIdeaList handles the idea_list tool call.
func (h *Handlers) HandleIdeaList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IdeaListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.IdeaList(h.db, ops.IdeaListInput{Category: input.Category})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleBoardStatus handles the board_status tool call.
func (h *Handlers) HandleBoardStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Status(h.db)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleBoardGenerate handles the board_generate tool call.
func (h *Handlers) HandleBoardGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Generate(ctx, h.db, h.client, ops.GenerateInput{})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleChatOpen handles the chat_open tool call.
func (h *Handlers) HandleChatOpen(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CategoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ChatOpen(h.db, ops.ChatOpenInput{Category: input.Category})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleChatSend handles the chat_send tool call.
func (h *Handlers) HandleChatSend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ChatSendRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ChatSend(ctx, h.db, h.client, ops.ChatSendInput{
		Category: input.Category,
		Text:     input.Text,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleChatAccept handles the chat_accept tool call.
func (h *Handlers) HandleChatAccept(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ChatAcceptRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ChatAccept(h.db, ops.ChatAcceptInput{
		Category:   input.Category,
		MessageID:  input.MessageID,
		Suggestion: input.Suggestion,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandlePlanExport handles the plan_export tool call.
func (h *Handlers) HandlePlanExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PlanExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.db, ops.ExportInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCanvasReset handles the canvas_reset tool call.
func (h *Handlers) HandleCanvasReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Reset(h.db)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleViewSet handles the view_set tool call.
func (h *Handlers) HandleViewSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ViewSetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ViewSet(h.db, ops.ViewSetInput{View: input.View})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if cErr, ok := err.(*errors.CanvasError); ok {
		errorObj := map[string]any{
			"code":    cErr.Code,
			"message": cErr.Message,
			"status":  cErr.Status,
		}
		if cErr.Code != errors.ErrInternal && cErr.Details != nil {
			errorObj["details"] = cErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
