package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/apperr"
)

// Team is the top-level ownership boundary.
type Team struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// InsertTeam inserts a team row.
func InsertTeam(e Execer, t *Team) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := e.Exec(`INSERT INTO teams (id, name, created_at) VALUES (?, ?, ?)`,
		t.ID, t.Name, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: insert team: %w", err)
	}
	return nil
}

// GetTeam returns a team by id.
func GetTeam(e Execer, id uuid.UUID) (*Team, error) {
	var t Team
	err := e.QueryRow(`SELECT id, name, created_at FROM teams WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: get team: %w", err)
	}
	return &t, nil
}
