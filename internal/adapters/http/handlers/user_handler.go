package handlers

import (
	"net/http"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// UserHandler handles /users registration and the caller's /admin role.
type UserHandler struct {
	svc        ports.UserService
	pagination config.PaginationConfig
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(svc ports.UserService, pagination config.PaginationConfig) *UserHandler {
	return &UserHandler{svc: svc, pagination: pagination}
}

// Register handles POST /users. The body is ignored; the user is built from
// the verified token. Answers 201 for a new user and 200 for a known one.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	user, created, err := h.svc.Register(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ToUserResponse(dto.LinksFor(r), user)
	if created {
		writeCreated(w, r, resp.Self, resp)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r, h.pagination)
	if !ok {
		return
	}

	users, more, err := h.svc.ListUsers(r.Context(), page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToList(dto.LinksFor(r), string(domain.KindUser), users, page, more, dto.ToUserResponse))
}

// ListAdmins handles GET /admin. The admin set is small and returned whole.
func (h *UserHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.svc.ListAdmins(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToList(dto.LinksFor(r), "admins", admins, domain.Page{}, false, dto.ToUserResponse))
}

// GrantAdmin handles POST /admin.
func (h *UserHandler) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	user, err := h.svc.GrantAdmin(r.Context(), id.Sub)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ToUserResponse(dto.LinksFor(r), user)
	writeCreated(w, r, resp.Self, resp)
}

// RevokeAdmin handles DELETE /admin.
func (h *UserHandler) RevokeAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	if err := h.svc.RevokeAdmin(r.Context(), id.Sub); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
