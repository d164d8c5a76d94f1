package handlers

import (
	"net/http"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// MemberHandler serves one member collection, /clients or /team_members.
// Reads and creates are public; the router puts replace, patch and delete
// behind the admin check.
type MemberHandler[T, R any] struct {
	kind       domain.Kind
	svc        ports.MemberService[T]
	pagination config.PaginationConfig
	convert    func(dto.Links, *T) R
	self       func(dto.Links, *T) string
}

// NewClientHandler creates the handler for /clients.
func NewClientHandler(svc ports.ClientService, pagination config.PaginationConfig) *MemberHandler[domain.Client, dto.ClientResponse] {
	return &MemberHandler[domain.Client, dto.ClientResponse]{
		kind:       domain.KindClient,
		svc:        svc,
		pagination: pagination,
		convert:    dto.ToClientResponse,
		self: func(l dto.Links, c *domain.Client) string {
			return l.Resource(domain.KindClient, c.ID)
		},
	}
}

// NewTeamMemberHandler creates the handler for /team_members.
func NewTeamMemberHandler(svc ports.TeamMemberService, pagination config.PaginationConfig) *MemberHandler[domain.TeamMember, dto.TeamMemberResponse] {
	return &MemberHandler[domain.TeamMember, dto.TeamMemberResponse]{
		kind:       domain.KindTeamMember,
		svc:        svc,
		pagination: pagination,
		convert:    dto.ToTeamMemberResponse,
		self: func(l dto.Links, m *domain.TeamMember) string {
			return l.Resource(domain.KindTeamMember, m.ID)
		},
	}
}

// Create handles POST on the collection.
func (h *MemberHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	m, err := h.svc.Create(r.Context(), payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l := dto.LinksFor(r)
	writeCreated(w, r, h.self(l, m), h.convert(l, m))
}

// List handles GET on the collection.
func (h *MemberHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r, h.pagination)
	if !ok {
		return
	}

	items, more, err := h.svc.List(r.Context(), page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToList(dto.LinksFor(r), string(h.kind), items, page, more, h.convert))
}

// Get handles GET /{kind}/{id}.
func (h *MemberHandler[T, R]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.convert(dto.LinksFor(r), m))
}

// Replace handles PUT /{kind}/{id}.
func (h *MemberHandler[T, R]) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	m, err := h.svc.Replace(r.Context(), id, payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l := dto.LinksFor(r)
	writeCreated(w, r, h.self(l, m), h.convert(l, m))
}

// Patch handles PATCH /{kind}/{id}.
func (h *MemberHandler[T, R]) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Patch(r.Context(), id, payload); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /{kind}/{id}.
func (h *MemberHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
