package mcp

import (
	"context"
	"database/sql"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/calebhs/canvas/internal/config"
	"github.com/calebhs/canvas/internal/suggest"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"profile_set": {
		def:     profileSetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProfileSet },
	},
	"profile_get": {
		def:     profileGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProfileGet },
	},
	"idea_add": {
		def:     ideaAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleIdeaAdd },
	},
	"idea_edit": {
		def:     ideaEditToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleIdeaEdit },
	},
	"idea_remove": {
		def:     ideaRemoveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleIdeaRemove },
	},
	"idea_star": {
		def:     ideaStarToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleIdeaStar },
	},
	"idea_list": {
		def:     ideaListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleIdeaList },
	},
	"board_status": {
		def:     boardStatusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBoardStatus },
	},
	"board_generate": {
		def:     boardGenerateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBoardGenerate },
	},
	"chat_open": {
		def:     chatOpenToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChatOpen },
	},
	"chat_send": {
		def:     chatSendToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChatSend },
	},
	"chat_accept": {
		def:     chatAcceptToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChatAccept },
	},
	"plan_export": {
		def:     planExportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePlanExport },
	},
	"canvas_reset": {
		def:     canvasResetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCanvasReset },
	},
	"view_set": {
		def:     viewSetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleViewSet },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// NewServer creates a new MCP server with canvas tools registered.
func NewServer(db *sql.DB, cfg *config.Config, client *suggest.Client, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"canvas",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(db, cfg, client)

	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(db *sql.DB, cfg *config.Config, client *suggest.Client, version string) error {
	s := NewServer(db, cfg, client, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
