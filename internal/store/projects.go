package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/apperr"
)

// Project groups files under one team.
type Project struct {
	ID        uuid.UUID
	TeamID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// InsertProject inserts a project row.
func InsertProject(e Execer, p *Project) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := e.Exec(`INSERT INTO projects (id, team_id, name, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.TeamID, p.Name, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: insert project: %w", err)
	}
	return nil
}

// GetProject returns a project by id.
func GetProject(e Execer, id uuid.UUID) (*Project, error) {
	var p Project
	err := e.QueryRow(`SELECT id, team_id, name, created_at FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.TeamID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: get project: %w", err)
	}
	return &p, nil
}

// UpdateProjectTeam moves a project to another team.
func UpdateProjectTeam(e Execer, projectID, teamID uuid.UUID) error {
	_, err := e.Exec(`UPDATE projects SET team_id = ? WHERE id = ?`, teamID, projectID)
	if err != nil {
		return fmt.Errorf("store: update project team: %w", err)
	}
	return nil
}

// ListProjectFileIDs returns the ids of every file owned by the project,
// in creation order.
func ListProjectFileIDs(e Execer, projectID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := e.Query(`SELECT id FROM files WHERE project_id = ? ORDER BY created_at ASC, id ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("store: list project files: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
