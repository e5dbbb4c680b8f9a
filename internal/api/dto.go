package api

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/ehwaz/internal/store"
)

// FileSummary is the response payload for a duplicated file.
type FileSummary struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Name       string    `json:"name"`
	IsShared   bool      `json:"is_shared"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

func fileSummary(f *store.File) FileSummary {
	return FileSummary{
		ID:         f.ID.String(),
		ProjectID:  f.ProjectID.String(),
		Name:       f.Name,
		IsShared:   f.IsShared,
		CreatedAt:  f.CreatedAt,
		ModifiedAt: f.ModifiedAt,
	}
}

// ProjectSummary is the response payload for a duplicated project.
type ProjectSummary struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func projectSummary(p *store.Project) ProjectSummary {
	return ProjectSummary{
		ID:        p.ID.String(),
		TeamID:    p.TeamID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// MoveFilesRequest is the body of POST /files/move.
type MoveFilesRequest struct {
	IDs       []string `json:"ids"`
	ProjectID string   `json:"project_id"`
}

// Validate validates the request.
func (r MoveFilesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDs, validation.Required, validation.Each(is.UUIDv4)),
		validation.Field(&r.ProjectID, validation.Required, is.UUIDv4),
	)
}

// MoveProjectRequest is the body of POST /projects/{id}/move.
type MoveProjectRequest struct {
	TeamID string `json:"team_id"`
}

// Validate validates the request.
func (r MoveProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TeamID, validation.Required, is.UUIDv4),
	)
}
