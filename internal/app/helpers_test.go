package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/dankimjw/portfolio-api/internal/adapters/store/memory"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
	"github.com/dankimjw/portfolio-api/internal/ports"
	"github.com/dankimjw/portfolio-api/internal/validate"
)

const testOwner = "auth0|owner"

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testMetrics(t *testing.T) *telemetry.Metrics {
	t.Helper()
	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "portfolio-api-test")
	require.NoError(t, err)
	return m
}

// fixture wires a coordinator over an in-memory store.
type fixture struct {
	mem   *memory.Store
	store ports.DocumentStore
	coord *Coordinator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := memory.New()
	return &fixture{
		mem:   mem,
		store: mem,
		coord: NewCoordinator(mem, config.StoreConfig{}, testMetrics(t), discardLogger()),
	}
}

// newFixtureOver wires a coordinator over store, seeding through mem.
func newFixtureOver(t *testing.T, mem *memory.Store, store ports.DocumentStore, transactional bool) *fixture {
	t.Helper()
	return &fixture{
		mem:   mem,
		store: store,
		coord: NewCoordinator(store, config.StoreConfig{Transactional: transactional}, nil, discardLogger()),
	}
}

func (f *fixture) validator() *validate.Validator {
	return validate.New(validate.NewTable(), f.coord)
}

func put[T any, PT interface {
	*T
	domain.Entity
}](t *testing.T, store ports.DocumentStore, e PT) PT {
	t.Helper()
	doc, err := e.Document()
	require.NoError(t, err)
	stored, err := store.Put(context.Background(), doc)
	require.NoError(t, err)
	out, err := domain.Decode[T, PT](stored)
	require.NoError(t, err)
	return out
}

func get[T any, PT interface {
	*T
	domain.Entity
}](t *testing.T, store ports.DocumentStore, kind domain.Kind, id int64) PT {
	t.Helper()
	doc, err := store.Get(context.Background(), kind, id)
	require.NoError(t, err)
	out, err := domain.Decode[T, PT](doc)
	require.NoError(t, err)
	return out
}

func (f *fixture) seedProject(t *testing.T, name string) *domain.Project {
	t.Helper()
	return put[domain.Project](t, f.mem, &domain.Project{
		Name:        name,
		Budget:      1000,
		Description: "Quarterly rollout",
		StartDate:   "2024-01-01",
		EndDate:     "2024-06-30",
		Owner:       testOwner,
		TeamMembers: []domain.Ref{},
	})
}

func (f *fixture) seedClient(t *testing.T, name string) *domain.Client {
	t.Helper()
	return put[domain.Client](t, f.mem, &domain.Client{
		Name:     name,
		Industry: domain.IndustryFinancials,
		JoinDate: "2023-05-01",
	})
}

func (f *fixture) seedTeamMember(t *testing.T, name string) *domain.TeamMember {
	t.Helper()
	return put[domain.TeamMember](t, f.mem, &domain.TeamMember{
		Name:      name,
		JoinDate:  "2022-03-15",
		Specialty: "Backend",
	})
}

func (f *fixture) project(t *testing.T, id int64) *domain.Project {
	t.Helper()
	return get[domain.Project](t, f.mem, domain.KindProject, id)
}

func (f *fixture) client(t *testing.T, id int64) *domain.Client {
	t.Helper()
	return get[domain.Client](t, f.mem, domain.KindClient, id)
}

func (f *fixture) teamMember(t *testing.T, id int64) *domain.TeamMember {
	t.Helper()
	return get[domain.TeamMember](t, f.mem, domain.KindTeamMember, id)
}

func clientEdge(projectID, clientID int64) domain.Edge {
	return domain.Edge{Kind: domain.EdgeProjectClient, ProjectID: projectID, MemberID: clientID}
}

func memberEdge(projectID, memberID int64) domain.Edge {
	return domain.Edge{Kind: domain.EdgeProjectTeamMember, ProjectID: projectID, MemberID: memberID}
}

var errInjected = errors.New("injected write failure")

// failingStore fails every Put of failKind.
type failingStore struct {
	ports.DocumentStore
	failKind domain.Kind
}

func (s *failingStore) Put(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if doc.Kind == s.failKind {
		return domain.Document{}, errInjected
	}
	return s.DocumentStore.Put(ctx, doc)
}

// failingTxStore runs transactions on mem and fails every Put of failKind
// made inside them.
type failingTxStore struct {
	*memory.Store
	failKind domain.Kind
}

func (s *failingTxStore) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.DocumentStore) error) error {
	return s.Store.InTx(ctx, func(ctx context.Context, tx ports.DocumentStore) error {
		return fn(ctx, &failingStore{DocumentStore: tx, failKind: s.failKind})
	})
}
