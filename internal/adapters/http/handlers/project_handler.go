// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// ProjectHandler handles the caller-owned /projects routes and the attach
// and detach routes for their clients and team members. Every route needs an
// authenticated caller.
type ProjectHandler struct {
	svc        ports.ProjectService
	pagination config.PaginationConfig
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService, pagination config.PaginationConfig) *ProjectHandler {
	return &ProjectHandler{svc: svc, pagination: pagination}
}

// CreateProject handles POST /projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	p, err := h.svc.CreateProject(r.Context(), id.Sub, payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ToProjectResponse(dto.LinksFor(r), p)
	writeCreated(w, r, resp.Self, resp)
}

// ListProjects handles GET /projects. Only the caller's projects are listed.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	page, ok := parsePage(w, r, h.pagination)
	if !ok {
		return
	}

	projects, more, err := h.svc.ListProjects(r.Context(), id.Sub, page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToList(dto.LinksFor(r), string(domain.KindProject), projects, page, more, dto.ToProjectResponse))
}

// GetProject handles GET /projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	owner, projectID, ok := h.target(w, r)
	if !ok {
		return
	}

	p, err := h.svc.GetProject(r.Context(), owner, projectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(dto.LinksFor(r), p))
}

// ReplaceProject handles PUT /projects/{id}.
func (h *ProjectHandler) ReplaceProject(w http.ResponseWriter, r *http.Request) {
	owner, projectID, ok := h.target(w, r)
	if !ok {
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	p, err := h.svc.ReplaceProject(r.Context(), owner, projectID, payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ToProjectResponse(dto.LinksFor(r), p)
	writeCreated(w, r, resp.Self, resp)
}

// PatchProject handles PATCH /projects/{id}.
func (h *ProjectHandler) PatchProject(w http.ResponseWriter, r *http.Request) {
	owner, projectID, ok := h.target(w, r)
	if !ok {
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.PatchProject(r.Context(), owner, projectID, payload); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteProject handles DELETE /projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	owner, projectID, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), owner, projectID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AttachMember returns the handler for PUT /projects/{id}/{kind}/{member_id}.
func (h *ProjectHandler) AttachMember(kind domain.Kind) http.HandlerFunc {
	return h.edge(kind, h.svc.AttachMember)
}

// DetachMember returns the handler for DELETE /projects/{id}/{kind}/{member_id}.
func (h *ProjectHandler) DetachMember(kind domain.Kind) http.HandlerFunc {
	return h.edge(kind, h.svc.DetachMember)
}

type edgeOp func(ctx context.Context, owner string, id int64, kind domain.Kind, memberID int64) error

func (h *ProjectHandler) edge(kind domain.Kind, op edgeOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, projectID, ok := h.target(w, r)
		if !ok {
			return
		}
		memberID, err := parseID(r, "member_id")
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}

		if err := op(r.Context(), owner, projectID, kind, memberID); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// target resolves the caller and the {id} path parameter.
func (h *ProjectHandler) target(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	id, ok := caller(w, r)
	if !ok {
		return "", 0, false
	}
	projectID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return "", 0, false
	}
	return id.Sub, projectID, true
}
