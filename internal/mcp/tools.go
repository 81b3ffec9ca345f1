package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// categoryDescription documents the closed category set on every tool that
// takes one.
const categoryDescription = "Category id: content, automation, research, data, coding, or ideation"

var profileSetToolDef = mcp.NewTool("profile_set",
	mcp.WithDescription("Update the intake profile. Fields are accepted verbatim; completeness is only checked by board_generate."),
	mcp.WithString("role",
		mcp.Description("Job title, e.g. \"Marketing Director\""),
	),
	mcp.WithString("responsibilities",
		mcp.Description("Free-text description of day-to-day responsibilities"),
	),
	mcp.WithArray("toggle_help",
		mcp.Description("Motivation ids to toggle on or off: time, quality, capability, decisions, overload, scale"),
		mcp.Items(map[string]any{"type": "string"}),
	),
)

var profileGetToolDef = mcp.NewTool("profile_get",
	mcp.WithDescription("Read the intake profile, its completeness, and the selectable motivation options."),
)

var ideaAddToolDef = mcp.NewTool("idea_add",
	mcp.WithDescription("Add a manual idea to a category. Whitespace-only text is silently rejected."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description(categoryDescription),
	),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Idea text"),
	),
)

var ideaEditToolDef = mcp.NewTool("idea_edit",
	mcp.WithDescription("Replace an idea's text. An edit that trims to empty keeps the original text."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description(categoryDescription),
	),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Idea id"),
	),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Replacement text"),
	),
)

var ideaRemoveToolDef = mcp.NewTool("idea_remove",
	mcp.WithDescription("Delete an idea from a category. A missing idea is a no-op."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description(categoryDescription),
	),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Idea id"),
	),
)

var ideaStarToolDef = mcp.NewTool("idea_star",
	mcp.WithDescription("Toggle an idea's priority star."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description(categoryDescription),
	),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Idea id"),
	),
)

var ideaListToolDef = mcp.NewTool("idea_list",
	mcp.WithDescription("List the board's ideas grouped by category, in display order."),
	mcp.WithString("category",
		mcp.Description("Limit the listing to one category; omit for all six"),
	),
)

var boardStatusToolDef = mcp.NewTool("board_status",
	mcp.WithDescription("Report the current view, profile completeness, and per-category idea counts."),
)

var boardGenerateToolDef = mcp.NewTool("board_generate",
	mcp.WithDescription("Generate starter ideas for every category from the intake profile. Fails with PROFILE_INCOMPLETE until role, motivations, and responsibilities are all set. Repeated runs append rather than replace."),
)

var chatOpenToolDef = mcp.NewTool("chat_open",
	mcp.WithDescription("Open a category's brainstorm conversation, seeding the assistant greeting on first open."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description(categoryDescription),
	),
)

var chatSendToolDef = mcp.NewTool("chat_send",
	mcp.WithDescription("Send a message in a category's brainstorm conversation and return the assistant reply with any pending suggestions."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description(categoryDescription),
	),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Message text"),
	),
)

var chatAcceptToolDef = mcp.NewTool("chat_accept",
	mcp.WithDescription("Accept one pending suggestion from an assistant message onto the board."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description(categoryDescription),
	),
	mcp.WithString("message_id",
		mcp.Required(),
		mcp.Description("Assistant message id carrying the suggestion"),
	),
	mcp.WithString("suggestion",
		mcp.Required(),
		mcp.Description("Exact suggestion text to accept"),
	),
)

var planExportToolDef = mcp.NewTool("plan_export",
	mcp.WithDescription("Render the markdown integration plan and write it to disk."),
	mcp.WithString("path",
		mcp.Description("Destination path; default ~/.canvas/exports/ai-integration-plan.md"),
	),
)

var canvasResetToolDef = mcp.NewTool("canvas_reset",
	mcp.WithDescription("Clear the profile, board, and conversations and return to the intake view."),
)

var viewSetToolDef = mcp.NewTool("view_set",
	mcp.WithDescription("Switch between the intake and canvas views."),
	mcp.WithString("view",
		mcp.Required(),
		mcp.Description("Either \"intake\" or \"canvas\""),
	),
)
