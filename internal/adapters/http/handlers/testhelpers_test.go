package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/middleware"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
)

const testOwner = "auth0|ada"

var testPagination = config.PaginationConfig{DefaultLimit: 5, MaxLimit: 50}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asCaller attaches the identity the authentication middleware would.
func asCaller(r *http.Request, sub string) *http.Request {
	id := domain.Identity{Sub: sub, Name: "Ada Lovelace", Email: "ada@example.com"}
	return r.WithContext(middleware.WithIdentity(r.Context(), id))
}

func newRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func validProject() *domain.Project {
	return &domain.Project{
		ID:          7,
		Name:        "Apollo",
		Budget:      250000,
		Description: "Guidance computer",
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Owner:       testOwner,
		Client:      &domain.Ref{ID: 3},
		TeamMembers: []domain.Ref{{ID: 11}, {ID: 12}},
	}
}

func validClient() *domain.Client {
	return &domain.Client{
		ID:       3,
		Name:     "Acme",
		Industry: domain.IndustryMaterials,
		JoinDate: "2023-01-01",
		Projects: &domain.NamedRef{ID: 7, Name: "Apollo"},
	}
}

func validTeamMember() *domain.TeamMember {
	return &domain.TeamMember{
		ID:        11,
		Name:      "Grace Hopper",
		JoinDate:  "2022-03-15",
		Specialty: "Compilers",
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
