package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/apperr"
)

// File is a design document. Content is the encoded semi-structured
// tree; the store treats it as opaque bytes.
type File struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	Name       string
	Content    []byte
	IsShared   bool
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// InsertFile inserts a file row. Dependent rows (library rels, media
// objects, profile rels) are inserted separately by the caller.
func InsertFile(e Execer, f *File) error {
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.ModifiedAt.IsZero() {
		f.ModifiedAt = now
	}
	_, err := e.Exec(`
		INSERT INTO files (id, project_id, name, content, is_shared, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.ProjectID, f.Name, f.Content, f.IsShared, f.CreatedAt, f.ModifiedAt)
	if err != nil {
		return fmt.Errorf("store: insert file: %w", err)
	}
	return nil
}

// GetFile returns a file by id.
func GetFile(e Execer, id uuid.UUID) (*File, error) {
	var f File
	err := e.QueryRow(`
		SELECT id, project_id, name, content, is_shared, created_at, modified_at
		FROM files WHERE id = ?
	`, id).Scan(&f.ID, &f.ProjectID, &f.Name, &f.Content, &f.IsShared, &f.CreatedAt, &f.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: get file: %w", err)
	}
	return &f, nil
}

// GetFileProjects resolves the current project of each named file.
// Returns apperr.ErrNotFound when any id does not resolve.
func GetFileProjects(e Execer, ids []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]uuid.UUID{}, nil
	}
	query := fmt.Sprintf(`SELECT id, project_id FROM files WHERE id IN (%s)`, placeholders(len(ids)))
	rows, err := e.Query(query, idArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("store: get file projects: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]uuid.UUID, len(ids))
	for rows.Next() {
		var id, projectID uuid.UUID
		if err := rows.Scan(&id, &projectID); err != nil {
			return nil, err
		}
		out[id] = projectID
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) != len(ids) {
		return nil, apperr.ErrNotFound
	}
	return out, nil
}

// UpdateFilesProject moves all named files to the project in a single
// statement.
func UpdateFilesProject(e Execer, ids []uuid.UUID, projectID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	query := fmt.Sprintf(`UPDATE files SET project_id = ?, modified_at = ? WHERE id IN (%s)`,
		placeholders(len(ids)))
	args := append([]any{projectID, time.Now().UTC()}, idArgs(ids)...)
	if _, err := e.Exec(query, args...); err != nil {
		return fmt.Errorf("store: update files project: %w", err)
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func idArgs(ids []uuid.UUID) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
