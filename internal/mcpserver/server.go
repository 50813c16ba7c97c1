// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes FindVisor tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/findvisor/internal/datetime"
	"github.com/starford/findvisor/internal/logic"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/parser"
)

const syntaxURI = "findvisor://command-syntax"

// HistoryReader lists executed command lines.
type HistoryReader interface {
	Search(keyword string, limit int) ([]models.CommandRecord, error)
}

// Server wraps the MCP server with FindVisor tools.
type Server struct {
	mcp  *server.MCPServer
	eng  *logic.Engine
	hist HistoryReader
}

// New creates a new MCP server with all FindVisor tools registered.
// hist may be nil, which disables search_history results.
func New(eng *logic.Engine, hist HistoryReader) *Server {
	s := &Server{eng: eng, hist: hist}

	s.mcp = server.NewMCPServer(
		"FindVisor",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("run_command",
		mcp.WithDescription("Run one FindVisor command line (find, reschedule, addtag, deletetag, "+
			"list, today, history, help) and return its feedback. Read the syntax first via "+
			"the get_command_syntax tool or the "+syntaxURI+" resource."),
		mcp.WithString("line", mcp.Required(), mcp.Description("Command line, e.g. find n/alex")),
	), s.runCommand)

	s.mcp.AddTool(mcp.NewTool("list_contacts",
		mcp.WithDescription("List the contacts currently displayed, with the index each command uses."),
	), s.listContacts)

	s.mcp.AddTool(mcp.NewTool("search_history",
		mcp.WithDescription("List previously executed command lines, newest first."),
		mcp.WithString("keyword", mcp.Description("Only lines containing keyword (empty for all)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of entries")),
	), s.searchHistory)

	s.mcp.AddTool(mcp.NewTool("get_command_syntax",
		mcp.WithDescription("Returns the FindVisor command syntax. "+
			"Call this before running commands to use the right prefixes and formats."),
	), s.getCommandSyntax)

	s.mcp.AddResource(
		mcp.NewResource(syntaxURI, "Command Syntax",
			mcp.WithResourceDescription("Prefixes, date formats and usage of every command."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSyntaxResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) runCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	line, err := req.RequireString("line")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(line) == "" {
		return mcp.NewToolResultError("line is required"), nil
	}
	resp := s.eng.Execute(line)
	if !resp.OK {
		return mcp.NewToolResultError(resp.Feedback), nil
	}
	return mcp.NewToolResultText(resp.Feedback), nil
}

func (s *Server) listContacts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(s.eng.View().DTO(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.hist == nil {
		return mcp.NewToolResultText("no history recorded"), nil
	}
	limit := req.GetInt("limit", parser.DefaultHistoryLimit)
	if limit <= 0 {
		limit = parser.DefaultHistoryLimit
	}
	records, err := s.hist.Search(req.GetString("keyword", ""), limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(records) == 0 {
		return mcp.NewToolResultText("no history recorded"), nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		status := "ok"
		if !r.OK {
			status = "failed"
		}
		lines[i] = fmt.Sprintf("[%s] %s (%s)", datetime.FormatDateTime(r.ExecutedAt), r.Line, status)
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) getCommandSyntax(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(CommandSyntax), nil
}

func (s *Server) readSyntaxResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      syntaxURI,
			MIMEType: "text/markdown",
			Text:     CommandSyntax,
		},
	}, nil
}
