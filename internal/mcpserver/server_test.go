package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/ehwaz/internal/fileservice"
	"github.com/starford/ehwaz/internal/store"
)

type fixture struct {
	srv     *Server
	db      *store.DB
	profile uuid.UUID

	teamID    uuid.UUID
	projectID uuid.UUID
	fileID    uuid.UUID
}

func testServer(t *testing.T) *fixture {
	t.Helper()

	dbFile, err := os.CreateTemp("", "ehwaz-mcp-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	fx := &fixture{
		srv:       New(fileservice.NewService(db)),
		db:        db,
		profile:   uuid.New(),
		teamID:    uuid.New(),
		projectID: uuid.New(),
		fileID:    uuid.New(),
	}
	if err := store.InsertTeam(db.Conn(), &store.Team{ID: fx.teamID, Name: "team"}); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertTeamGrant(db.Conn(), fx.teamID, store.FullGrant(fx.profile)); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertProject(db.Conn(), &store.Project{ID: fx.projectID, TeamID: fx.teamID, Name: "project"}); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertFile(db.Conn(), &store.File{ID: fx.fileID, ProjectID: fx.projectID, Name: "design", Content: []byte(`{}`)}); err != nil {
		t.Fatal(err)
	}
	return fx
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct call-tool test helper; the handlers are
	// invoked directly.
	var result *mcp.CallToolResult
	var err error
	switch name {
	case "duplicate_file":
		result, err = srv.duplicateFile(ctx, req)
	case "duplicate_project":
		result, err = srv.duplicateProject(ctx, req)
	case "move_files":
		result, err = srv.moveFiles(ctx, req)
	case "move_project":
		result, err = srv.moveProject(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}
	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestDuplicateFileTool(t *testing.T) {
	fx := testServer(t)

	r := callTool(t, fx.srv, "duplicate_file", map[string]any{
		"profile_id": fx.profile.String(),
		"file_id":    fx.fileID.String(),
	})
	if r.IsError {
		t.Fatalf("tool failed: %s", resultText(r))
	}
	text := resultText(r)
	if !strings.HasPrefix(text, fmt.Sprintf("duplicated file %s -> ", fx.fileID)) {
		t.Errorf("result = %q", text)
	}

	ids, err := store.ListProjectFileIDs(fx.db.Conn(), fx.projectID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Errorf("project file count = %d, want 2", len(ids))
	}
}

func TestDuplicateProjectTool(t *testing.T) {
	fx := testServer(t)

	r := callTool(t, fx.srv, "duplicate_project", map[string]any{
		"profile_id": fx.profile.String(),
		"project_id": fx.projectID.String(),
	})
	if r.IsError {
		t.Fatalf("tool failed: %s", resultText(r))
	}
	if !strings.HasPrefix(resultText(r), fmt.Sprintf("duplicated project %s -> ", fx.projectID)) {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestMoveFilesTool(t *testing.T) {
	fx := testServer(t)
	dest := uuid.New()
	if err := store.InsertProject(fx.db.Conn(), &store.Project{ID: dest, TeamID: fx.teamID, Name: "dest"}); err != nil {
		t.Fatal(err)
	}

	r := callTool(t, fx.srv, "move_files", map[string]any{
		"profile_id": fx.profile.String(),
		"file_ids":   fx.fileID.String(),
		"project_id": dest.String(),
	})
	if r.IsError {
		t.Fatalf("tool failed: %s", resultText(r))
	}

	f, err := store.GetFile(fx.db.Conn(), fx.fileID)
	if err != nil {
		t.Fatal(err)
	}
	if f.ProjectID != dest {
		t.Errorf("project = %s, want %s", f.ProjectID, dest)
	}
}

func TestMoveProjectTool_SameTeamRejected(t *testing.T) {
	fx := testServer(t)

	r := callTool(t, fx.srv, "move_project", map[string]any{
		"profile_id": fx.profile.String(),
		"project_id": fx.projectID.String(),
		"team_id":    fx.teamID.String(),
	})
	if !r.IsError {
		t.Fatal("expected error for same-team move")
	}
	if !strings.Contains(resultText(r), "cannot-move-project-to-same-team") {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestTool_BadID(t *testing.T) {
	fx := testServer(t)
	r := callTool(t, fx.srv, "duplicate_file", map[string]any{
		"profile_id": fx.profile.String(),
		"file_id":    "not-an-id",
	})
	if !r.IsError {
		t.Fatal("expected error for malformed id")
	}
}
