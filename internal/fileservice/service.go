// Package fileservice implements duplication and relocation of files
// and projects across ownership boundaries.
package fileservice

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/apperr"
	"github.com/starford/ehwaz/internal/perms"
	"github.com/starford/ehwaz/internal/store"
)

// Service exposes the four management operations. Each runs inside one
// atomic transaction: authorization checks happen before any mutating
// statement, errors propagate unmodified and roll everything back, and
// nothing is retried internally.
type Service struct {
	db *store.DB
}

// NewService creates a new file service.
func NewService(db *store.DB) *Service {
	return &Service{db: db}
}

// DuplicateFile deep-copies a single file under a fresh identity,
// rewriting internal references. The copy lands in the same project
// with its shared flag reset.
func (s *Service) DuplicateFile(ctx context.Context, profileID, fileID uuid.UUID) (*store.File, error) {
	var dup *store.File
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		ok, err := perms.CanEditFile(tx, profileID, fileID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.ErrForbidden
		}
		src, err := store.GetFile(tx, fileID)
		if err != nil {
			return err
		}
		idx := NewIdentityIndex()
		idx.RemapOrGenerate(src.ID)
		dup, err = duplicateFile(tx, idx, src, nil, true, profileID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dup, nil
}

// DuplicateProject deep-copies a whole project and every file in it,
// resolving intra-project references to the new siblings.
func (s *Service) DuplicateProject(ctx context.Context, profileID, projectID uuid.UUID) (*store.Project, error) {
	var dup *store.Project
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		ok, err := perms.CanEditProject(tx, profileID, projectID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.ErrForbidden
		}
		src, err := store.GetProject(tx, projectID)
		if err != nil {
			return err
		}
		dup, err = duplicateProject(tx, src, profileID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dup, nil
}

// MoveFiles relocates files into another project and prunes library
// references that would cross the destination team's boundary.
func (s *Service) MoveFiles(ctx context.Context, profileID uuid.UUID, fileIDs []uuid.UUID, destProjectID uuid.UUID) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return moveFiles(tx, profileID, fileIDs, destProjectID)
	})
}

// MoveProject relocates a project into another team and prunes library
// references from its files that now cross the team boundary.
func (s *Service) MoveProject(ctx context.Context, profileID, projectID, destTeamID uuid.UUID) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return moveProject(tx, profileID, projectID, destTeamID)
	})
}
