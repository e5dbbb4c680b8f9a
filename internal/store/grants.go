package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Grant links an entity to a profile with owner/admin/edit capabilities.
// Grants are created fresh on every duplication, never copied from the
// source entity.
type Grant struct {
	ProfileID uuid.UUID
	IsOwner   bool
	IsAdmin   bool
	CanEdit   bool
}

// FullGrant returns a grant with every capability, the shape given to
// the requesting actor on duplication.
func FullGrant(profileID uuid.UUID) Grant {
	return Grant{ProfileID: profileID, IsOwner: true, IsAdmin: true, CanEdit: true}
}

// InsertFileGrant inserts a file-profile rel.
func InsertFileGrant(e Execer, fileID uuid.UUID, g Grant) error {
	_, err := e.Exec(`
		INSERT INTO file_profile_rels (file_id, profile_id, is_owner, is_admin, can_edit)
		VALUES (?, ?, ?, ?, ?)
	`, fileID, g.ProfileID, g.IsOwner, g.IsAdmin, g.CanEdit)
	if err != nil {
		return fmt.Errorf("store: insert file grant: %w", err)
	}
	return nil
}

// InsertProjectGrant inserts a project-profile rel.
func InsertProjectGrant(e Execer, projectID uuid.UUID, g Grant) error {
	_, err := e.Exec(`
		INSERT INTO project_profile_rels (project_id, profile_id, is_owner, is_admin, can_edit)
		VALUES (?, ?, ?, ?, ?)
	`, projectID, g.ProfileID, g.IsOwner, g.IsAdmin, g.CanEdit)
	if err != nil {
		return fmt.Errorf("store: insert project grant: %w", err)
	}
	return nil
}

// InsertTeamGrant inserts a team-profile rel.
func InsertTeamGrant(e Execer, teamID uuid.UUID, g Grant) error {
	_, err := e.Exec(`
		INSERT INTO team_profile_rels (team_id, profile_id, is_owner, is_admin, can_edit)
		VALUES (?, ?, ?, ?, ?)
	`, teamID, g.ProfileID, g.IsOwner, g.IsAdmin, g.CanEdit)
	if err != nil {
		return fmt.Errorf("store: insert team grant: %w", err)
	}
	return nil
}
