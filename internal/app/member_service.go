package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/ports"
	"github.com/dankimjw/portfolio-api/internal/validate"
)

// Compile-time checks that both instantiations implement their ports.
var (
	_ ports.ClientService     = (*MemberService[domain.Client, *domain.Client])(nil)
	_ ports.TeamMemberService = (*MemberService[domain.TeamMember, *domain.TeamMember])(nil)
)

// MemberService serves the member side of an edge: clients or team members.
// Writes that touch the projects attribute go through the Coordinator so the
// linked project is updated first.
type MemberService[T any, PT interface {
	*T
	domain.Member
}] struct {
	kind        domain.Kind
	store       ports.DocumentStore
	coordinator *Coordinator
	validator   *validate.Validator
	logger      *slog.Logger
}

// NewClientService creates the service behind /clients.
func NewClientService(store ports.DocumentStore, coordinator *Coordinator, validator *validate.Validator, logger *slog.Logger) *MemberService[domain.Client, *domain.Client] {
	return newMemberService[domain.Client](domain.KindClient, store, coordinator, validator, logger)
}

// NewTeamMemberService creates the service behind /team_members.
func NewTeamMemberService(store ports.DocumentStore, coordinator *Coordinator, validator *validate.Validator, logger *slog.Logger) *MemberService[domain.TeamMember, *domain.TeamMember] {
	return newMemberService[domain.TeamMember](domain.KindTeamMember, store, coordinator, validator, logger)
}

func newMemberService[T any, PT interface {
	*T
	domain.Member
}](kind domain.Kind, store ports.DocumentStore, coordinator *Coordinator, validator *validate.Validator, logger *slog.Logger) *MemberService[T, PT] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MemberService[T, PT]{
		kind:        kind,
		store:       store,
		coordinator: coordinator,
		validator:   validator,
		logger:      logger.With(slog.String("kind", kind.String())),
	}
}

// Create stores a new member with no linked project.
func (s *MemberService[T, PT]) Create(ctx context.Context, payload validate.Payload) (*T, error) {
	s.logger.InfoContext(ctx, "creating member")

	if err := s.validator.Validate(ctx, s.kind, validate.OpCreate, payload); err != nil {
		return nil, err
	}

	m := PT(new(T))
	if err := validate.Apply(m, payload); err != nil {
		return nil, err
	}
	m.SetLinkedProject(nil)

	doc, err := m.Document()
	if err != nil {
		return nil, err
	}
	stored, err := s.store.Put(ctx, doc)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create member",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing %s: %w", s.kind, err)
	}

	created, err := domain.Decode[T, PT](stored)
	if err != nil {
		return nil, err
	}
	return (*T)(created), nil
}

// List returns one page of members.
func (s *MemberService[T, PT]) List(ctx context.Context, page domain.Page) ([]T, bool, error) {
	s.logger.InfoContext(ctx, "listing members",
		slog.Int("limit", page.Limit),
		slog.Int("offset", page.Offset),
	)

	res, err := s.store.Query(ctx, s.kind, nil, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list members",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, false, err
	}

	out := make([]T, 0, len(res.Documents))
	for _, doc := range res.Documents {
		m, err := domain.Decode[T, PT](doc)
		if err != nil {
			return nil, false, err
		}
		out = append(out, *(*T)(m))
	}
	return out, res.More, nil
}

// Get returns a single member.
func (s *MemberService[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	s.logger.InfoContext(ctx, "fetching member", slog.Int64("id", id))

	m, err := s.load(ctx, "Get", id)
	if err != nil {
		return nil, err
	}
	return (*T)(m), nil
}

// Replace overwrites every attribute including the projects reference.
func (s *MemberService[T, PT]) Replace(ctx context.Context, id int64, payload validate.Payload) (*T, error) {
	s.logger.InfoContext(ctx, "replacing member", slog.Int64("id", id))

	return s.update(ctx, "Replace", validate.OpReplace, id, payload)
}

// Patch updates the attributes present in the payload.
func (s *MemberService[T, PT]) Patch(ctx context.Context, id int64, payload validate.Payload) (*T, error) {
	s.logger.InfoContext(ctx, "patching member", slog.Int64("id", id))

	return s.update(ctx, "Patch", validate.OpPatch, id, payload)
}

func (s *MemberService[T, PT]) update(ctx context.Context, operation string, op validate.Op, id int64, payload validate.Payload) (*T, error) {
	if err := s.validator.Check(s.kind, op, payload); err != nil {
		return nil, err
	}

	m, err := s.load(ctx, operation, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(ctx, s.kind, op, payload); err != nil {
		return nil, err
	}
	if err := validate.Apply(m, payload); err != nil {
		return nil, err
	}

	if err := s.coordinator.RewireMember(ctx, m, payload.Has("projects")); err != nil {
		s.logger.ErrorContext(ctx, "failed to update member",
			slog.String("operation", operation),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return (*T)(m), nil
}

// Delete clears the linked project's reference to the member, then deletes
// the member.
func (s *MemberService[T, PT]) Delete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting member", slog.Int64("id", id))

	return s.coordinator.Delete(ctx, s.kind, id)
}

func (s *MemberService[T, PT]) load(ctx context.Context, operation string, id int64) (PT, error) {
	doc, err := s.coordinator.Resolve(ctx, s.kind, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch member",
			slog.String("operation", operation),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return domain.Decode[T, PT](doc)
}
