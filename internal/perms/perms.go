// Package perms resolves edit permissions through profile-rel rows.
// A profile may edit an entity via a direct grant or via an edit grant
// on any owning container up the chain (file -> project -> team).
package perms

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/store"
)

// CanEditFile reports whether the profile may edit the file.
func CanEditFile(e store.Execer, profileID, fileID uuid.UUID) (bool, error) {
	var n int
	err := e.QueryRow(`
		SELECT count(*) FROM (
			SELECT 1 FROM file_profile_rels
			WHERE file_id = ? AND profile_id = ? AND (is_owner OR is_admin OR can_edit)
			UNION ALL
			SELECT 1 FROM project_profile_rels ppr
			JOIN files f ON f.project_id = ppr.project_id
			WHERE f.id = ? AND ppr.profile_id = ? AND (ppr.is_owner OR ppr.is_admin OR ppr.can_edit)
			UNION ALL
			SELECT 1 FROM team_profile_rels tpr
			JOIN projects p ON p.team_id = tpr.team_id
			JOIN files f ON f.project_id = p.id
			WHERE f.id = ? AND tpr.profile_id = ? AND (tpr.is_owner OR tpr.is_admin OR tpr.can_edit)
		)
	`, fileID, profileID, fileID, profileID, fileID, profileID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("perms: file edit check: %w", err)
	}
	return n > 0, nil
}

// CanEditProject reports whether the profile may edit the project.
func CanEditProject(e store.Execer, profileID, projectID uuid.UUID) (bool, error) {
	var n int
	err := e.QueryRow(`
		SELECT count(*) FROM (
			SELECT 1 FROM project_profile_rels
			WHERE project_id = ? AND profile_id = ? AND (is_owner OR is_admin OR can_edit)
			UNION ALL
			SELECT 1 FROM team_profile_rels tpr
			JOIN projects p ON p.team_id = tpr.team_id
			WHERE p.id = ? AND tpr.profile_id = ? AND (tpr.is_owner OR tpr.is_admin OR tpr.can_edit)
		)
	`, projectID, profileID, projectID, profileID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("perms: project edit check: %w", err)
	}
	return n > 0, nil
}

// CanEditTeam reports whether the profile may edit the team.
func CanEditTeam(e store.Execer, profileID, teamID uuid.UUID) (bool, error) {
	var n int
	err := e.QueryRow(`
		SELECT count(*) FROM team_profile_rels
		WHERE team_id = ? AND profile_id = ? AND (is_owner OR is_admin OR can_edit)
	`, teamID, profileID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("perms: team edit check: %w", err)
	}
	return n > 0, nil
}
