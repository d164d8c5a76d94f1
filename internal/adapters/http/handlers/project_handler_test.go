package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/handlers"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/validate"
	"github.com/dankimjw/portfolio-api/mocks"
)

func newProjectHandler(t *testing.T) (*handlers.ProjectHandler, *mocks.MockProjectService) {
	t.Helper()
	svc := mocks.NewMockProjectService(t)
	return handlers.NewProjectHandler(svc, testPagination), svc
}

func payloadHas(name string, want any) any {
	return mock.MatchedBy(func(p validate.Payload) bool {
		return p[name] == want
	})
}

// --- CreateProject ---

func TestCreateProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().CreateProject(mock.Anything, testOwner, payloadHas("name", "Apollo")).
		Return(validProject(), nil)

	rec := httptest.NewRecorder()
	req := asCaller(newRequest(http.MethodPost, "/api/v1/projects", `{"name":"Apollo"}`), testOwner)
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, "http://example.com/api/v1/projects/7", rec.Header().Get("Location"))

	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "http://example.com/api/v1/projects/7", resp["self"])
	assert.Equal(t, testOwner, resp["project_owner"])
	assert.Equal(t, map[string]any{"id": float64(3), "self": "http://example.com/api/v1/clients/3"}, resp["client"])
}

func TestCreateProject_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		authorized bool
		wantStatus int
	}{
		{name: "no caller", body: `{"name":"Apollo"}`, wantStatus: http.StatusUnauthorized},
		{name: "array body", body: `[1,2]`, authorized: true, wantStatus: http.StatusBadRequest},
		{name: "malformed body", body: `{"name":`, authorized: true, wantStatus: http.StatusBadRequest},
		{name: "two objects", body: `{}{}`, authorized: true, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newProjectHandler(t)

			req := newRequest(http.MethodPost, "/projects", tt.body)
			if tt.authorized {
				req = asCaller(req, testOwner)
			}
			rec := httptest.NewRecorder()
			h.CreateProject(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestCreateProject_ValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().CreateProject(mock.Anything, testOwner, mock.Anything).
		Return(nil, domain.NewValidationError("budget", "must be an integer"))

	rec := httptest.NewRecorder()
	req := asCaller(newRequest(http.MethodPost, "/projects", `{"budget":"lots"}`), testOwner)
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, rec.Body.String(), `"location":"body.budget"`)
}

// --- ListProjects ---

func TestListProjects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		page     domain.Page
		more     bool
		wantNext string
	}{
		{name: "defaults", page: domain.Page{Limit: 5}},
		{
			name:     "next link",
			query:    "?limit=2&offset=4",
			page:     domain.Page{Limit: 2, Offset: 4},
			more:     true,
			wantNext: "http://example.com/projects?limit=2&offset=6",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			svc.EXPECT().ListProjects(mock.Anything, testOwner, tt.page).
				Return([]domain.Project{*validProject()}, tt.more, nil)

			rec := httptest.NewRecorder()
			req := asCaller(newRequest(http.MethodGet, "/projects"+tt.query, ""), testOwner)
			h.ListProjects(rec, req)

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[map[string]any](t, rec)
			require.Len(t, resp["projects"], 1)
			if tt.wantNext == "" {
				assert.NotContains(t, resp, "next")
			} else {
				assert.Equal(t, tt.wantNext, resp["next"])
			}
		})
	}
}

func TestListProjects_BadPage(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	req := asCaller(newRequest(http.MethodGet, "/projects?limit=0", ""), testOwner)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListProjects_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().ListProjects(mock.Anything, testOwner, mock.Anything).
		Return(nil, false, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := asCaller(newRequest(http.MethodGet, "/projects", ""), testOwner)
	h.ListProjects(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- GetProject ---

func TestGetProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "found", id: "7", wantStatus: http.StatusOK},
		{name: "missing", id: "7", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "another owner", id: "7", err: domain.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "non numeric id", id: "abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", id: "0", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			if tt.wantStatus != http.StatusBadRequest {
				var p *domain.Project
				if tt.err == nil {
					p = validProject()
				}
				svc.EXPECT().GetProject(mock.Anything, testOwner, int64(7)).Return(p, tt.err)
			}

			rec := httptest.NewRecorder()
			req := asCaller(newRequest(http.MethodGet, "/projects/"+tt.id, ""), testOwner)
			req = withChiParams(req, map[string]string{"id": tt.id})
			h.GetProject(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- ReplaceProject / PatchProject / DeleteProject ---

func TestReplaceProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().ReplaceProject(mock.Anything, testOwner, int64(7), payloadHas("name", "Apollo")).
		Return(validProject(), nil)

	rec := httptest.NewRecorder()
	req := asCaller(newRequest(http.MethodPut, "/projects/7", `{"name":"Apollo"}`), testOwner)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.ReplaceProject(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, "http://example.com/projects/7", rec.Header().Get("Location"))
}

func TestReplaceProject_AlreadyLinked(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().ReplaceProject(mock.Anything, testOwner, int64(7), mock.Anything).
		Return(nil, domain.ErrAlreadyLinked)

	rec := httptest.NewRecorder()
	req := asCaller(newRequest(http.MethodPut, "/projects/7", `{"client":{"id":3}}`), testOwner)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.ReplaceProject(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestPatchProject_NoContent(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().PatchProject(mock.Anything, testOwner, int64(7), payloadHas("description", "Moonshot")).
		Return(validProject(), nil)

	rec := httptest.NewRecorder()
	req := asCaller(newRequest(http.MethodPatch, "/projects/7", `{"description":"Moonshot"}`), testOwner)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.PatchProject(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store down", err: domain.ErrUnavailable, wantStatus: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			svc.EXPECT().DeleteProject(mock.Anything, testOwner, int64(7)).Return(tt.err)

			rec := httptest.NewRecorder()
			req := asCaller(newRequest(http.MethodDelete, "/projects/7", ""), testOwner)
			req = withChiParams(req, map[string]string{"id": "7"})
			h.DeleteProject(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- AttachMember / DetachMember ---

func TestAttachMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		kind       domain.Kind
		err        error
		wantStatus int
	}{
		{name: "client", kind: domain.KindClient, wantStatus: http.StatusNoContent},
		{name: "team member", kind: domain.KindTeamMember, wantStatus: http.StatusNoContent},
		{name: "unknown member", kind: domain.KindClient, err: domain.ErrReferenceNotFound, wantStatus: http.StatusNotFound},
		{name: "linked elsewhere", kind: domain.KindTeamMember, err: domain.ErrAlreadyLinked, wantStatus: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			svc.EXPECT().AttachMember(mock.Anything, testOwner, int64(7), tt.kind, int64(11)).Return(tt.err)

			rec := httptest.NewRecorder()
			req := asCaller(newRequest(http.MethodPut, "/projects/7/"+string(tt.kind)+"/11", ""), testOwner)
			req = withChiParams(req, map[string]string{"id": "7", "member_id": "11"})
			h.AttachMember(tt.kind)(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestDetachMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		memberID   string
		err        error
		wantStatus int
	}{
		{name: "detached", memberID: "11", wantStatus: http.StatusNoContent},
		{name: "not linked", memberID: "11", err: domain.ErrReferenceMismatch, wantStatus: http.StatusNotFound},
		{name: "bad member id", memberID: "-1", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			if tt.wantStatus != http.StatusBadRequest {
				svc.EXPECT().DetachMember(mock.Anything, testOwner, int64(7), domain.KindTeamMember, int64(11)).Return(tt.err)
			}

			rec := httptest.NewRecorder()
			req := asCaller(newRequest(http.MethodDelete, "/projects/7/team_members/"+tt.memberID, ""), testOwner)
			req = withChiParams(req, map[string]string{"id": "7", "member_id": tt.memberID})
			h.DetachMember(domain.KindTeamMember)(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
