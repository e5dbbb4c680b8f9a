package fileservice

import (
	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/apperr"
	"github.com/starford/ehwaz/internal/perms"
	"github.com/starford/ehwaz/internal/store"
)

// moveFiles relocates a set of files into another project, then prunes
// library edges that would cross the destination team's boundary.
func moveFiles(e store.Execer, profileID uuid.UUID, fileIDs []uuid.UUID, destProjectID uuid.UUID) error {
	if len(fileIDs) == 0 {
		return apperr.Validation(apperr.CodeEmptyFileSet)
	}

	byFile, err := store.GetFileProjects(e, fileIDs)
	if err != nil {
		return err
	}
	sources := make(map[uuid.UUID]struct{})
	for _, projectID := range byFile {
		sources[projectID] = struct{}{}
	}

	for projectID := range sources {
		if err := requireProjectEdit(e, profileID, projectID); err != nil {
			return err
		}
	}
	if err := requireProjectEdit(e, profileID, destProjectID); err != nil {
		return err
	}

	if _, ok := sources[destProjectID]; ok {
		return apperr.Validation(apperr.CodeMoveFileSameProject)
	}

	dest, err := store.GetProject(e, destProjectID)
	if err != nil {
		return err
	}
	if err := store.UpdateFilesProject(e, fileIDs, dest.ID); err != nil {
		return err
	}
	return store.DeleteCrossTeamRelsByFiles(e, fileIDs, dest.TeamID)
}

// moveProject relocates a project into another team, then prunes
// library edges from its files that now cross the team boundary.
func moveProject(e store.Execer, profileID, projectID, destTeamID uuid.UUID) error {
	p, err := store.GetProject(e, projectID)
	if err != nil {
		return err
	}
	if _, err := store.GetTeam(e, destTeamID); err != nil {
		return err
	}

	if err := requireTeamEdit(e, profileID, p.TeamID); err != nil {
		return err
	}
	if err := requireTeamEdit(e, profileID, destTeamID); err != nil {
		return err
	}

	if p.TeamID == destTeamID {
		return apperr.Validation(apperr.CodeMoveProjectSameTeam)
	}

	if err := store.UpdateProjectTeam(e, p.ID, destTeamID); err != nil {
		return err
	}
	return store.DeleteCrossTeamRelsByProject(e, p.ID, destTeamID)
}

func requireProjectEdit(e store.Execer, profileID, projectID uuid.UUID) error {
	ok, err := perms.CanEditProject(e, profileID, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}
	return nil
}

func requireTeamEdit(e store.Execer, profileID, teamID uuid.UUID) error {
	ok, err := perms.CanEditTeam(e, profileID, teamID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}
	return nil
}
