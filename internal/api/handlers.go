package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/apperr"
	"github.com/starford/ehwaz/internal/fileservice"
)

// profileHeader carries the requesting actor's profile id. Identity
// verification itself is the gateway's job; this service only resolves
// permissions for the given profile.
const profileHeader = "X-Profile-Id"

// Handler holds API route handlers.
type Handler struct {
	svc *fileservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *fileservice.Service) *Handler {
	return &Handler{svc: svc}
}

func profileID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.Header.Get(profileHeader))
	return id, err == nil
}

func urlUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

// writeServiceError maps service errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody("forbidden"))
	default:
		if ve, ok := apperr.IsValidation(err); ok {
			writeJSON(w, http.StatusBadRequest, validationBody(ve.Code))
			return
		}
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// DuplicateFile handles POST /files/{id}/duplicate.
func (h *Handler) DuplicateFile(w http.ResponseWriter, r *http.Request) {
	profile, ok := profileID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("valid "+profileHeader+" header is required"))
		return
	}
	fileID, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid file id"))
		return
	}
	dup, err := h.svc.DuplicateFile(r.Context(), profile, fileID)
	if err != nil {
		writeServiceError(w, "duplicate file", err)
		return
	}
	writeJSON(w, http.StatusCreated, fileSummary(dup))
}

// DuplicateProject handles POST /projects/{id}/duplicate.
func (h *Handler) DuplicateProject(w http.ResponseWriter, r *http.Request) {
	profile, ok := profileID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("valid "+profileHeader+" header is required"))
		return
	}
	projectID, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid project id"))
		return
	}
	dup, err := h.svc.DuplicateProject(r.Context(), profile, projectID)
	if err != nil {
		writeServiceError(w, "duplicate project", err)
		return
	}
	writeJSON(w, http.StatusCreated, projectSummary(dup))
}

// MoveFiles handles POST /files/move.
func (h *Handler) MoveFiles(w http.ResponseWriter, r *http.Request) {
	profile, ok := profileID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("valid "+profileHeader+" header is required"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req MoveFilesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	fileIDs := make([]uuid.UUID, len(req.IDs))
	for i, s := range req.IDs {
		fileIDs[i] = uuid.MustParse(s) // validated above
	}
	destProjectID := uuid.MustParse(req.ProjectID)

	if err := h.svc.MoveFiles(r.Context(), profile, fileIDs, destProjectID); err != nil {
		writeServiceError(w, "move files", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveProject handles POST /projects/{id}/move.
func (h *Handler) MoveProject(w http.ResponseWriter, r *http.Request) {
	profile, ok := profileID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("valid "+profileHeader+" header is required"))
		return
	}
	projectID, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid project id"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req MoveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	destTeamID := uuid.MustParse(req.TeamID) // validated above

	if err := h.svc.MoveProject(r.Context(), profile, projectID, destTeamID); err != nil {
		writeServiceError(w, "move project", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
