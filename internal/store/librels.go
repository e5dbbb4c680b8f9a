package store

import (
	"fmt"

	"github.com/google/uuid"
)

// LibraryRel is a directed edge from a file to another file used as a
// component library. Both endpoints must resolve to the same team; any
// move deletes edges that would violate this.
type LibraryRel struct {
	FileID        uuid.UUID
	LibraryFileID uuid.UUID
}

// InsertLibraryRel inserts a library edge.
func InsertLibraryRel(e Execer, rel LibraryRel) error {
	_, err := e.Exec(`INSERT INTO file_library_rels (file_id, library_file_id) VALUES (?, ?)`,
		rel.FileID, rel.LibraryFileID)
	if err != nil {
		return fmt.Errorf("store: insert library rel: %w", err)
	}
	return nil
}

// ListFileLibraryRels returns every library edge owned by the file.
func ListFileLibraryRels(e Execer, fileID uuid.UUID) ([]LibraryRel, error) {
	rows, err := e.Query(`
		SELECT file_id, library_file_id FROM file_library_rels
		WHERE file_id = ? ORDER BY library_file_id ASC
	`, fileID)
	if err != nil {
		return nil, fmt.Errorf("store: list library rels: %w", err)
	}
	defer rows.Close()

	var rels []LibraryRel
	for rows.Next() {
		var rel LibraryRel
		if err := rows.Scan(&rel.FileID, &rel.LibraryFileID); err != nil {
			return nil, err
		}
		rels = append(rels, rel)
	}
	return rels, rows.Err()
}

// DeleteCrossTeamRelsByFiles deletes every library edge whose referencing
// file is in ids and whose library file resolves to a team other than
// teamID.
func DeleteCrossTeamRelsByFiles(e Execer, ids []uuid.UUID, teamID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	query := fmt.Sprintf(`
		DELETE FROM file_library_rels
		WHERE file_id IN (%s)
		  AND library_file_id IN (
			SELECT f.id FROM files f
			JOIN projects p ON p.id = f.project_id
			WHERE p.team_id <> ?
		  )
	`, placeholders(len(ids)))
	args := append(idArgs(ids), teamID)
	if _, err := e.Exec(query, args...); err != nil {
		return fmt.Errorf("store: prune cross-team rels: %w", err)
	}
	return nil
}

// DeleteCrossTeamRelsByProject deletes every library edge from files
// inside the project whose library file resolves to a team other than
// teamID.
func DeleteCrossTeamRelsByProject(e Execer, projectID, teamID uuid.UUID) error {
	_, err := e.Exec(`
		DELETE FROM file_library_rels
		WHERE file_id IN (SELECT id FROM files WHERE project_id = ?)
		  AND library_file_id IN (
			SELECT f.id FROM files f
			JOIN projects p ON p.id = f.project_id
			WHERE p.team_id <> ?
		  )
	`, projectID, teamID)
	if err != nil {
		return fmt.Errorf("store: prune cross-team rels: %w", err)
	}
	return nil
}
