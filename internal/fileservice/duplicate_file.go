package fileservice

import (
	"time"

	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/content"
	"github.com/starford/ehwaz/internal/store"
)

// duplicateFile copies one file row plus its dependent rows under the
// identities held by idx. The file's own id must already be seeded in
// the index; both entry points (DuplicateFile and DuplicateProject)
// guarantee that. All writes share the caller's transaction, so a
// failure on any insert aborts the whole duplication, including sibling
// files already processed in a project-level call.
func duplicateFile(e store.Execer, idx *IdentityIndex, src *store.File, destProjectID *uuid.UUID, resetShared bool, profileID uuid.UUID) (*store.File, error) {
	rels, err := store.ListFileLibraryRels(e, src.ID)
	if err != nil {
		return nil, err
	}
	media, err := store.ListFileMediaObjects(e, src.ID)
	if err != nil {
		return nil, err
	}

	// Library edges: the referencing side always hits (the file id is
	// seeded); the library side hits only for siblings seeded by a
	// project duplication and stays untouched otherwise.
	for i := range rels {
		rels[i].FileID = idx.RemapIfPresent(rels[i].FileID)
		rels[i].LibraryFileID = idx.RemapIfPresent(rels[i].LibraryFileID)
	}

	// Non-local media objects are shared assets and get fresh
	// identities; local ones keep theirs.
	for _, m := range media {
		if !m.IsLocal && !idx.Has(m.ID) {
			idx.RemapOrGenerate(m.ID)
		}
	}
	for i := range media {
		media[i].ID = idx.RemapIfPresent(media[i].ID)
		media[i].FileID = idx.RemapIfPresent(media[i].FileID)
	}

	tree, err := content.Decode(src.Content)
	if err != nil {
		return nil, err
	}
	tree = relinkTree(tree, idx)
	tree = content.Migrate(tree)
	tree = content.PruneNulls(tree)
	encoded, err := content.Encode(tree)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dup := &store.File{
		ID:         idx.RemapIfPresent(src.ID),
		ProjectID:  src.ProjectID,
		Name:       src.Name,
		Content:    encoded,
		IsShared:   src.IsShared,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if destProjectID != nil {
		dup.ProjectID = *destProjectID
	}
	if resetShared {
		dup.IsShared = false
	}

	if err := store.InsertFile(e, dup); err != nil {
		return nil, err
	}
	if err := store.InsertFileGrant(e, dup.ID, store.FullGrant(profileID)); err != nil {
		return nil, err
	}
	for _, rel := range rels {
		if err := store.InsertLibraryRel(e, rel); err != nil {
			return nil, err
		}
	}
	for _, m := range media {
		if err := store.InsertMediaObject(e, m); err != nil {
			return nil, err
		}
	}
	return dup, nil
}
