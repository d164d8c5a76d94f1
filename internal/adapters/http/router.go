// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
	"github.com/dankimjw/portfolio-api/internal/adapters/http/handlers"
	"github.com/dankimjw/portfolio-api/internal/domain"
)

// Routes bundles the handlers and the per-group middleware the router mounts.
type Routes struct {
	Projects    *handlers.ProjectHandler
	Clients     *handlers.MemberHandler[domain.Client, dto.ClientResponse]
	TeamMembers *handlers.MemberHandler[domain.TeamMember, dto.TeamMemberResponse]
	Users       *handlers.UserHandler
	Health      *handlers.HealthHandler

	// Authenticate guards every route that needs a caller.
	Authenticate func(http.Handler) http.Handler
	// RequireAdmin is applied after Authenticate on member mutations.
	RequireAdmin func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Resource routes are
// served both at the root and under dto.APIPrefix.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, dto.ErrMethodNotAllowed))
	})

	// Health endpoints (outside the API prefix).
	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	r.Group(routes.mount)
	r.Route(dto.APIPrefix, routes.mount)

	return r
}

func (rt Routes) mount(r chi.Router) {
	// Public reads and creates.
	r.Group(func(r chi.Router) {
		r.Get("/users", rt.Users.ListUsers)
		mountMemberReads(r, "/clients", rt.Clients)
		mountMemberReads(r, "/team_members", rt.TeamMembers)
	})

	// Caller-scoped routes.
	r.Group(func(r chi.Router) {
		r.Use(rt.Authenticate)

		r.Post("/users", rt.Users.Register)
		r.Get("/admin", rt.Users.ListAdmins)
		r.Post("/admin", rt.Users.GrantAdmin)
		r.Delete("/admin", rt.Users.RevokeAdmin)

		r.Get("/projects", rt.Projects.ListProjects)
		r.Post("/projects", rt.Projects.CreateProject)
		r.Get("/projects/{id}", rt.Projects.GetProject)
		r.Put("/projects/{id}", rt.Projects.ReplaceProject)
		r.Patch("/projects/{id}", rt.Projects.PatchProject)
		r.Delete("/projects/{id}", rt.Projects.DeleteProject)

		for _, kind := range []domain.Kind{domain.KindClient, domain.KindTeamMember} {
			path := "/projects/{id}/" + string(kind) + "/{member_id}"
			r.Put(path, rt.Projects.AttachMember(kind))
			r.Delete(path, rt.Projects.DetachMember(kind))
		}
	})

	// Admin-only member mutations.
	r.Group(func(r chi.Router) {
		r.Use(rt.Authenticate, rt.RequireAdmin)
		mountMemberWrites(r, "/clients", rt.Clients)
		mountMemberWrites(r, "/team_members", rt.TeamMembers)
	})
}

func mountMemberReads[T, R any](r chi.Router, path string, h *handlers.MemberHandler[T, R]) {
	r.Get(path, h.List)
	r.Post(path, h.Create)
	r.Get(path+"/{id}", h.Get)
}

func mountMemberWrites[T, R any](r chi.Router, path string, h *handlers.MemberHandler[T, R]) {
	r.Put(path+"/{id}", h.Replace)
	r.Patch(path+"/{id}", h.Patch)
	r.Delete(path+"/{id}", h.Delete)
}
