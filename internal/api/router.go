package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/ehwaz/internal/fileservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(svc *fileservice.Service, authEnabled bool, token string) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Duplication.
	r.Post("/files/{id}/duplicate", h.DuplicateFile)
	r.Post("/projects/{id}/duplicate", h.DuplicateProject)

	// Relocation.
	r.Post("/files/move", h.MoveFiles)
	r.Post("/projects/{id}/move", h.MoveProject)

	return r
}
