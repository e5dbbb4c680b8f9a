// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the management operations for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ehwaz/internal/fileservice"
)

// Server wraps the MCP server with management tools.
type Server struct {
	mcp *server.MCPServer
	svc *fileservice.Service
}

// New creates a new MCP server with all tools registered.
func New(svc *fileservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Ehwaz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("duplicate_file",
		mcp.WithDescription("Deep-copy a file under a fresh identity. Internal component and media references are rewritten to the copy."),
		mcp.WithString("profile_id", mcp.Required(), mcp.Description("Profile id of the requesting actor")),
		mcp.WithString("file_id", mcp.Required(), mcp.Description("Id of the file to duplicate")),
	), s.duplicateFile)

	s.mcp.AddTool(mcp.NewTool("duplicate_project",
		mcp.WithDescription("Deep-copy a project and every file in it. References between files in the project resolve to the new copies."),
		mcp.WithString("profile_id", mcp.Required(), mcp.Description("Profile id of the requesting actor")),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Id of the project to duplicate")),
	), s.duplicateProject)

	s.mcp.AddTool(mcp.NewTool("move_files",
		mcp.WithDescription("Move files into another project. Library references crossing the destination team boundary are removed."),
		mcp.WithString("profile_id", mcp.Required(), mcp.Description("Profile id of the requesting actor")),
		mcp.WithString("file_ids", mcp.Required(), mcp.Description("Comma-separated ids of the files to move")),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Id of the destination project")),
	), s.moveFiles)

	s.mcp.AddTool(mcp.NewTool("move_project",
		mcp.WithDescription("Move a project into another team. Library references crossing the team boundary are removed."),
		mcp.WithString("profile_id", mcp.Required(), mcp.Description("Profile id of the requesting actor")),
		mcp.WithString("project_id", mcp.Required(), mcp.Description("Id of the project to move")),
		mcp.WithString("team_id", mcp.Required(), mcp.Description("Id of the destination team")),
	), s.moveProject)

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

func requireUUID(req mcp.CallToolRequest, name string) (uuid.UUID, error) {
	raw, err := req.RequireString(name)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", name, err)
	}
	return id, nil
}

func (s *Server) duplicateFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := requireUUID(req, "profile_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fileID, err := requireUUID(req, "file_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dup, err := s.svc.DuplicateFile(ctx, profile, fileID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("duplicated file %s -> %s", fileID, dup.ID)), nil
}

func (s *Server) duplicateProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := requireUUID(req, "profile_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	projectID, err := requireUUID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dup, err := s.svc.DuplicateProject(ctx, profile, projectID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("duplicated project %s -> %s", projectID, dup.ID)), nil
}

func (s *Server) moveFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := requireUUID(req, "profile_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rawIDs, err := req.RequireString("file_ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var fileIDs []uuid.UUID
	for _, part := range strings.Split(rawIDs, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("file_ids: %v", err)), nil
		}
		fileIDs = append(fileIDs, id)
	}
	projectID, err := requireUUID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.MoveFiles(ctx, profile, fileIDs, projectID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("moved %d file(s) to project %s", len(fileIDs), projectID)), nil
}

func (s *Server) moveProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := requireUUID(req, "profile_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	projectID, err := requireUUID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	teamID, err := requireUUID(req, "team_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.MoveProject(ctx, profile, projectID, teamID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("moved project %s to team %s", projectID, teamID)), nil
}
