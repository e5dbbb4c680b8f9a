package store

import (
	"fmt"

	"github.com/google/uuid"
)

// MediaObject belongs to exactly one file. Non-local objects are shared
// assets referenced by id from within the file's content and are
// re-identified on duplication; local ones keep their id.
type MediaObject struct {
	ID      uuid.UUID
	FileID  uuid.UUID
	Name    string
	IsLocal bool
}

// InsertMediaObject inserts a media row.
func InsertMediaObject(e Execer, m MediaObject) error {
	_, err := e.Exec(`INSERT INTO file_media_objects (id, file_id, name, is_local) VALUES (?, ?, ?, ?)`,
		m.ID, m.FileID, m.Name, m.IsLocal)
	if err != nil {
		return fmt.Errorf("store: insert media object: %w", err)
	}
	return nil
}

// ListFileMediaObjects returns every media row owned by the file.
func ListFileMediaObjects(e Execer, fileID uuid.UUID) ([]MediaObject, error) {
	rows, err := e.Query(`
		SELECT id, file_id, name, is_local FROM file_media_objects
		WHERE file_id = ? ORDER BY id ASC
	`, fileID)
	if err != nil {
		return nil, fmt.Errorf("store: list media objects: %w", err)
	}
	defer rows.Close()

	var objects []MediaObject
	for rows.Next() {
		var m MediaObject
		if err := rows.Scan(&m.ID, &m.FileID, &m.Name, &m.IsLocal); err != nil {
			return nil, err
		}
		objects = append(objects, m)
	}
	return objects, rows.Err()
}
