package fileservice

import (
	"time"

	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/store"
)

// duplicateProject copies a whole project. Every contained file id is
// seeded into the index before any file is processed so that library
// edges pointing at siblings processed later resolve to the new copies
// rather than the originals.
func duplicateProject(e store.Execer, src *store.Project, profileID uuid.UUID) (*store.Project, error) {
	fileIDs, err := store.ListProjectFileIDs(e, src.ID)
	if err != nil {
		return nil, err
	}

	idx := NewIdentityIndex()
	newProjectID := idx.RemapOrGenerate(src.ID)
	for _, id := range fileIDs {
		idx.RemapOrGenerate(id)
	}

	dup := &store.Project{
		ID:        newProjectID,
		TeamID:    src.TeamID,
		Name:      src.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.InsertProject(e, dup); err != nil {
		return nil, err
	}
	if err := store.InsertProjectGrant(e, dup.ID, store.FullGrant(profileID)); err != nil {
		return nil, err
	}

	// A project-level duplicate preserves intra-project sharing
	// semantics, so the shared flag is never reset here.
	for _, id := range fileIDs {
		f, err := store.GetFile(e, id)
		if err != nil {
			return nil, err
		}
		if _, err := duplicateFile(e, idx, f, &newProjectID, false, profileID); err != nil {
			return nil, err
		}
	}
	return dup, nil
}
