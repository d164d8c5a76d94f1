package app

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appctx "github.com/dankimjw/portfolio-api/internal/app/context"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/ports"
	"github.com/dankimjw/portfolio-api/mocks"
)

// --- Attach / Detach: project-client ---

func TestCoordinator_AttachClient_LinksBothSides(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	client := f.seedClient(t, "Acme")

	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, client.ID)))

	gotProj := f.project(t, proj.ID)
	gotClient := f.client(t, client.ID)
	require.NotNil(t, gotProj.Client)
	require.NotNil(t, gotClient.Projects)
	assert.Equal(t, client.ID, gotProj.Client.ID)
	assert.Equal(t, proj.ID, gotClient.Projects.ID)
	assert.Equal(t, "Apollo", gotClient.Projects.Name)
}

func TestCoordinator_AttachClient_TwiceIsRejected(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	client := f.seedClient(t, "Acme")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, client.ID)))
	before := f.client(t, client.ID)

	err := f.coord.Attach(ctx, clientEdge(proj.ID, client.ID))

	require.ErrorIs(t, err, domain.ErrAlreadyLinked)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, before, f.client(t, client.ID))
	assert.Equal(t, client.ID, f.project(t, proj.ID).Client.ID)
}

func TestCoordinator_AttachClient_ProjectAlreadyHasClient(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	first := f.seedClient(t, "Acme")
	second := f.seedClient(t, "Globex")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, first.ID)))

	err := f.coord.Attach(ctx, clientEdge(proj.ID, second.ID))

	require.ErrorIs(t, err, domain.ErrAlreadyLinked)
	assert.Nil(t, f.client(t, second.ID).Projects)
}

func TestCoordinator_Attach_MissingEnds(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	client := f.seedClient(t, "Acme")

	t.Run("missing project", func(t *testing.T) {
		t.Parallel()
		err := f.coord.Attach(ctx, clientEdge(999, client.ID))
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.NotErrorIs(t, err, domain.ErrReferenceNotFound)
	})

	t.Run("missing client", func(t *testing.T) {
		t.Parallel()
		err := f.coord.Attach(ctx, clientEdge(proj.ID, 999))
		require.ErrorIs(t, err, domain.ErrReferenceNotFound)
	})

	t.Run("unknown edge kind", func(t *testing.T) {
		t.Parallel()
		err := f.coord.Attach(ctx, domain.Edge{Kind: "project-user", ProjectID: proj.ID, MemberID: 1})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCoordinator_DetachThenAttachDifferentPartner(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	oldClient := f.seedClient(t, "Acme")
	newClient := f.seedClient(t, "Globex")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, oldClient.ID)))

	require.NoError(t, f.coord.Detach(ctx, clientEdge(proj.ID, oldClient.ID)))
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, newClient.ID)))

	assert.Nil(t, f.client(t, oldClient.ID).Projects)
	assert.Equal(t, newClient.ID, f.project(t, proj.ID).Client.ID)
	assert.Equal(t, proj.ID, f.client(t, newClient.ID).Projects.ID)
}

func TestCoordinator_DetachClient_Mismatch(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	linked := f.seedClient(t, "Acme")
	other := f.seedClient(t, "Globex")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, linked.ID)))

	err := f.coord.Detach(ctx, clientEdge(proj.ID, other.ID))

	require.ErrorIs(t, err, domain.ErrReferenceMismatch)
	assert.Equal(t, linked.ID, f.project(t, proj.ID).Client.ID)
}

// --- Attach / Detach: project-team member ---

func TestCoordinator_AttachTeamMember(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	ada := f.seedTeamMember(t, "Ada Lovelace")
	alan := f.seedTeamMember(t, "Alan Turing")

	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, ada.ID)))
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, alan.ID)))

	assert.Equal(t, []int64{ada.ID, alan.ID}, f.project(t, proj.ID).MemberIDs())
	assert.Equal(t, &domain.NamedRef{ID: proj.ID, Name: "Apollo"}, f.teamMember(t, ada.ID).Projects)

	t.Run("re-attach to the same project is rejected", func(t *testing.T) {
		err := f.coord.Attach(ctx, memberEdge(proj.ID, ada.ID))
		require.ErrorIs(t, err, domain.ErrAlreadyLinked)
	})

	t.Run("attach to another project is rejected", func(t *testing.T) {
		other := f.seedProject(t, "Gemini")
		err := f.coord.Attach(ctx, memberEdge(other.ID, ada.ID))
		require.ErrorIs(t, err, domain.ErrAlreadyLinked)
		assert.Empty(t, f.project(t, other.ID).TeamMembers)
	})
}

func TestCoordinator_DetachTeamMember(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	ada := f.seedTeamMember(t, "Ada Lovelace")
	alan := f.seedTeamMember(t, "Alan Turing")
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, ada.ID)))
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, alan.ID)))

	require.NoError(t, f.coord.Detach(ctx, memberEdge(proj.ID, ada.ID)))

	assert.Equal(t, []int64{alan.ID}, f.project(t, proj.ID).MemberIDs())
	assert.Nil(t, f.teamMember(t, ada.ID).Projects)

	err := f.coord.Detach(ctx, memberEdge(proj.ID, ada.ID))
	require.ErrorIs(t, err, domain.ErrReferenceMismatch)
}

// --- Delete cascade ---

func TestCoordinator_DeleteProject_NullsEveryPartner(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	client := f.seedClient(t, "Acme")
	ada := f.seedTeamMember(t, "Ada Lovelace")
	alan := f.seedTeamMember(t, "Alan Turing")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, client.ID)))
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, ada.ID)))
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, alan.ID)))

	require.NoError(t, f.coord.Delete(ctx, domain.KindProject, proj.ID))

	_, err := f.mem.Get(ctx, domain.KindProject, proj.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, f.client(t, client.ID).Projects)
	assert.Nil(t, f.teamMember(t, ada.ID).Projects)
	assert.Nil(t, f.teamMember(t, alan.ID).Projects)
}

func TestCoordinator_DeleteMember_ClearsProjectSide(t *testing.T) {
	t.Parallel()

	t.Run("client", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		ctx := context.Background()
		proj := f.seedProject(t, "Apollo")
		client := f.seedClient(t, "Acme")
		require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, client.ID)))

		require.NoError(t, f.coord.Delete(ctx, domain.KindClient, client.ID))

		assert.Nil(t, f.project(t, proj.ID).Client)
	})

	t.Run("team member", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		ctx := context.Background()
		proj := f.seedProject(t, "Apollo")
		ada := f.seedTeamMember(t, "Ada Lovelace")
		alan := f.seedTeamMember(t, "Alan Turing")
		require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, ada.ID)))
		require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, alan.ID)))

		require.NoError(t, f.coord.Delete(ctx, domain.KindTeamMember, ada.ID))

		assert.Equal(t, []int64{alan.ID}, f.project(t, proj.ID).MemberIDs())
	})

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		err := f.coord.Delete(context.Background(), domain.KindClient, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCoordinator_CascadeDeletePrep_DoesNotWrite(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	client := f.seedClient(t, "Acme")
	ada := f.seedTeamMember(t, "Ada Lovelace")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, client.ID)))
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, ada.ID)))

	actions, err := f.coord.CascadeDeletePrep(ctx, domain.KindProject, proj.ID)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.NotNil(t, f.client(t, client.ID).Projects)

	for _, a := range actions {
		require.NoError(t, a.Execute(ctx))
	}
	assert.Nil(t, f.client(t, client.ID).Projects)
	assert.Nil(t, f.teamMember(t, ada.ID).Projects)

	for _, a := range actions {
		require.NoError(t, a.Rollback(ctx))
	}
	assert.Equal(t, proj.ID, f.client(t, client.ID).Projects.ID)
}

// --- Rewire ---

func TestCoordinator_Rewire_ReplacesPartners(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	oldClient := f.seedClient(t, "Acme")
	newClient := f.seedClient(t, "Globex")
	kept := f.seedTeamMember(t, "Ada Lovelace")
	dropped := f.seedTeamMember(t, "Alan Turing")
	added := f.seedTeamMember(t, "Grace Hopper")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, oldClient.ID)))
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, kept.ID)))
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, dropped.ID)))

	after := f.project(t, proj.ID)
	after.Name = "Apollo Two"
	after.Client = &domain.Ref{ID: newClient.ID}
	after.TeamMembers = []domain.Ref{{ID: kept.ID}, {ID: added.ID}, {ID: added.ID}}

	require.NoError(t, f.coord.Rewire(ctx, after, Relations{Client: true, TeamMembers: true}))

	got := f.project(t, proj.ID)
	assert.Equal(t, "Apollo Two", got.Name)
	assert.Equal(t, newClient.ID, got.Client.ID)
	assert.Equal(t, []int64{kept.ID, added.ID}, got.MemberIDs())

	assert.Nil(t, f.client(t, oldClient.ID).Projects)
	assert.Equal(t, &domain.NamedRef{ID: proj.ID, Name: "Apollo Two"}, f.client(t, newClient.ID).Projects)
	assert.Equal(t, &domain.NamedRef{ID: proj.ID, Name: "Apollo Two"}, f.teamMember(t, kept.ID).Projects)
	assert.Equal(t, &domain.NamedRef{ID: proj.ID, Name: "Apollo Two"}, f.teamMember(t, added.ID).Projects)
	assert.Nil(t, f.teamMember(t, dropped.ID).Projects)
}

func TestCoordinator_Rewire_PartnerLinkedElsewhere(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	other := f.seedProject(t, "Gemini")
	busy := f.seedTeamMember(t, "Ada Lovelace")
	require.NoError(t, f.coord.Attach(ctx, memberEdge(other.ID, busy.ID)))

	after := f.project(t, proj.ID)
	after.TeamMembers = []domain.Ref{{ID: busy.ID}}

	err := f.coord.Rewire(ctx, after, Relations{TeamMembers: true})

	require.ErrorIs(t, err, domain.ErrAlreadyLinked)
	assert.Empty(t, f.project(t, proj.ID).TeamMembers)
	assert.Equal(t, other.ID, f.teamMember(t, busy.ID).Projects.ID)
}

func TestCoordinator_Rewire_MissingPartner(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	proj := f.seedProject(t, "Apollo")
	after := f.project(t, proj.ID)
	after.Client = &domain.Ref{ID: 404}

	err := f.coord.Rewire(context.Background(), after, Relations{Client: true})

	require.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.Nil(t, f.project(t, proj.ID).Client)
}

func TestCoordinator_Rewire_RenameWithoutRelationsLeavesCopyStale(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	ada := f.seedTeamMember(t, "Ada Lovelace")
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, ada.ID)))

	after := f.project(t, proj.ID)
	after.Name = "Apollo Two"
	require.NoError(t, f.coord.Rewire(ctx, after, Relations{}))

	assert.Equal(t, "Apollo Two", f.project(t, proj.ID).Name)
	assert.Equal(t, "Apollo", f.teamMember(t, ada.ID).Projects.Name)
}

func TestCoordinator_RewireMember_MovesBetweenProjects(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	from := f.seedProject(t, "Apollo")
	to := f.seedProject(t, "Gemini")
	ada := f.seedTeamMember(t, "Ada Lovelace")
	require.NoError(t, f.coord.Attach(ctx, memberEdge(from.ID, ada.ID)))

	after := f.teamMember(t, ada.ID)
	after.Projects = &domain.NamedRef{ID: to.ID, Name: "Whatever Name"}

	require.NoError(t, f.coord.RewireMember(ctx, after, true))

	assert.Empty(t, f.project(t, from.ID).TeamMembers)
	assert.Equal(t, []int64{ada.ID}, f.project(t, to.ID).MemberIDs())
	assert.Equal(t, &domain.NamedRef{ID: to.ID, Name: "Gemini"}, f.teamMember(t, ada.ID).Projects)
}

func TestCoordinator_RewireMember_ClientTakenProject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	owner := f.seedClient(t, "Acme")
	other := f.seedClient(t, "Globex")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, owner.ID)))

	after := f.client(t, other.ID)
	after.Projects = &domain.NamedRef{ID: proj.ID, Name: "Apollo"}

	err := f.coord.RewireMember(ctx, after, true)

	require.ErrorIs(t, err, domain.ErrAlreadyLinked)
	assert.Nil(t, f.client(t, other.ID).Projects)
}

func TestCoordinator_RewireMember_Unlink(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	proj := f.seedProject(t, "Apollo")
	client := f.seedClient(t, "Acme")
	require.NoError(t, f.coord.Attach(ctx, clientEdge(proj.ID, client.ID)))

	after := f.client(t, client.ID)
	after.Projects = nil
	require.NoError(t, f.coord.RewireMember(ctx, after, true))

	assert.Nil(t, f.project(t, proj.ID).Client)
	assert.Nil(t, f.client(t, client.ID).Projects)
}

// --- Partial failure ---

func TestCoordinator_Attach_SecondWriteFailureIsCompensated(t *testing.T) {
	t.Parallel()

	mem := newFixture(t).mem
	f := newFixtureOver(t, mem, &failingStore{DocumentStore: mem, failKind: domain.KindClient}, false)
	proj := f.seedProject(t, "Apollo")
	client := f.seedClient(t, "Acme")

	err := f.coord.Attach(context.Background(), clientEdge(proj.ID, client.ID))

	require.ErrorIs(t, err, errInjected)
	assert.Nil(t, f.project(t, proj.ID).Client, "first write must be rolled back")
	assert.Nil(t, f.client(t, client.ID).Projects)
}

// cancelAfterPut cancels the caller's context once its first Put lands, as a
// request deadline expiring between the two writes of an edge would.
type cancelAfterPut struct {
	ports.DocumentStore
	cancel context.CancelFunc
	once   sync.Once
}

func (s *cancelAfterPut) Put(ctx context.Context, doc domain.Document) (domain.Document, error) {
	stored, err := s.DocumentStore.Put(ctx, doc)
	s.once.Do(s.cancel)
	return stored, err
}

func TestCoordinator_Attach_CanceledBetweenWritesIsCompensated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edge  func(projectID, memberID int64) domain.Edge
		seed  func(f *fixture, t *testing.T) int64
		check func(f *fixture, t *testing.T, projectID, memberID int64)
	}{
		{
			name: "project-client",
			edge: clientEdge,
			seed: func(f *fixture, t *testing.T) int64 { return f.seedClient(t, "Acme").ID },
			check: func(f *fixture, t *testing.T, projectID, memberID int64) {
				assert.Nil(t, f.project(t, projectID).Client, "first write must be rolled back")
				assert.Nil(t, f.client(t, memberID).Projects)
			},
		},
		{
			name: "project-team_member",
			edge: memberEdge,
			seed: func(f *fixture, t *testing.T) int64 { return f.seedTeamMember(t, "Ada Lovelace").ID },
			check: func(f *fixture, t *testing.T, projectID, memberID int64) {
				assert.Empty(t, f.project(t, projectID).TeamMembers, "first write must be rolled back")
				assert.Nil(t, f.teamMember(t, memberID).Projects)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			mem := newFixture(t).mem
			f := newFixtureOver(t, mem, &cancelAfterPut{DocumentStore: mem, cancel: cancel}, false)
			proj := f.seedProject(t, "Apollo")
			memberID := tt.seed(f, t)

			err := f.coord.Attach(ctx, tt.edge(proj.ID, memberID))

			require.ErrorIs(t, err, context.Canceled)
			tt.check(f, t, proj.ID, memberID)
		})
	}
}

func TestCoordinator_Attach_TransactionalFailureWritesNothing(t *testing.T) {
	t.Parallel()

	mem := newFixture(t).mem
	f := newFixtureOver(t, mem, &failingTxStore{Store: mem, failKind: domain.KindTeamMember}, true)
	proj := f.seedProject(t, "Apollo")
	ada := f.seedTeamMember(t, "Ada Lovelace")

	err := f.coord.Attach(context.Background(), memberEdge(proj.ID, ada.ID))

	require.ErrorIs(t, err, errInjected)
	assert.Empty(t, f.project(t, proj.ID).TeamMembers)
	assert.Nil(t, f.teamMember(t, ada.ID).Projects)
}

func TestCoordinator_Transactional_Success(t *testing.T) {
	t.Parallel()

	mem := newFixture(t).mem
	f := newFixtureOver(t, mem, mem, true)
	ctx := context.Background()
	proj := f.seedProject(t, "Apollo")
	ada := f.seedTeamMember(t, "Ada Lovelace")
	alan := f.seedTeamMember(t, "Alan Turing")

	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, ada.ID)))
	require.NoError(t, f.coord.Attach(ctx, memberEdge(proj.ID, alan.ID)))
	require.NoError(t, f.coord.Delete(ctx, domain.KindProject, proj.ID))

	assert.Nil(t, f.teamMember(t, ada.ID).Projects)
	assert.Nil(t, f.teamMember(t, alan.ID).Projects)
}

// --- Resolve / Exists ---

func TestCoordinator_Exists(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	client := f.seedClient(t, "Acme")

	ok, err := f.coord.Exists(context.Background(), domain.KindClient, client.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.coord.Exists(context.Background(), domain.KindClient, client.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCoordinator_Exists_StoreFailure(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockDocumentStore(t)
	coord := NewCoordinator(store, config.StoreConfig{}, nil, discardLogger())

	store.EXPECT().Get(mock.Anything, domain.KindClient, int64(3)).Return(domain.Document{}, domain.ErrUnavailable)

	ok, err := coord.Exists(context.Background(), domain.KindClient, 3)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.False(t, ok)
}

func TestCoordinator_Resolve_MemoizesWithinRequest(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockDocumentStore(t)
	coord := NewCoordinator(store, config.StoreConfig{}, nil, discardLogger())

	doc := domain.Document{Kind: domain.KindProject, ID: 7, Body: []byte(`{"name":"Apollo"}`)}
	store.EXPECT().Get(mock.Anything, domain.KindProject, int64(7)).Return(doc, nil).Once()

	ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))
	for range 3 {
		got, err := coord.Resolve(ctx, domain.KindProject, 7)
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	}
}
