// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/ports"
	"github.com/dankimjw/portfolio-api/internal/validate"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ownerField is the stored attribute holding a project's owner.
const ownerField = "project_owner"

// ProjectService implements ports.ProjectService. It validates payloads,
// enforces ownership and hands every relationship change to the Coordinator.
type ProjectService struct {
	store       ports.DocumentStore
	coordinator *Coordinator
	validator   *validate.Validator
	logger      *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(store ports.DocumentStore, coordinator *Coordinator, validator *validate.Validator, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		store:       store,
		coordinator: coordinator,
		validator:   validator,
		logger:      logger,
	}
}

// CreateProject stores a new project with no client and no team members.
func (s *ProjectService) CreateProject(ctx context.Context, owner string, payload validate.Payload) (*domain.Project, error) {
	s.logger.InfoContext(ctx, "creating project")

	if err := s.validator.Validate(ctx, domain.KindProject, validate.OpCreate, payload); err != nil {
		return nil, err
	}

	proj := &domain.Project{}
	if err := validate.Apply(proj, payload); err != nil {
		return nil, err
	}
	proj.Owner = owner
	proj.Client = nil
	proj.TeamMembers = []domain.Ref{}

	doc, err := proj.Document()
	if err != nil {
		return nil, err
	}
	stored, err := s.store.Put(ctx, doc)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing project: %w", err)
	}

	proj.ID = stored.ID
	return proj, nil
}

// ListProjects returns one page of the owner's projects.
func (s *ProjectService) ListProjects(ctx context.Context, owner string, page domain.Page) ([]domain.Project, bool, error) {
	s.logger.InfoContext(ctx, "listing projects",
		slog.Int("limit", page.Limit),
		slog.Int("offset", page.Offset),
	)

	res, err := s.store.Query(ctx, domain.KindProject, []domain.Filter{{Field: ownerField, Value: owner}}, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return nil, false, err
	}

	projects := make([]domain.Project, 0, len(res.Documents))
	for _, doc := range res.Documents {
		proj, err := domain.Decode[domain.Project](doc)
		if err != nil {
			return nil, false, err
		}
		projects = append(projects, *proj)
	}
	return projects, res.More, nil
}

// GetProject returns a single project owned by owner.
func (s *ProjectService) GetProject(ctx context.Context, owner string, id int64) (*domain.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.Int64("id", id))

	return s.owned(ctx, "GetProject", owner, id)
}

// ReplaceProject overwrites every attribute of the project, including its
// client and team_members, and re-points both sides of every changed edge.
func (s *ProjectService) ReplaceProject(ctx context.Context, owner string, id int64, payload validate.Payload) (*domain.Project, error) {
	s.logger.InfoContext(ctx, "replacing project", slog.Int64("id", id))

	return s.update(ctx, "ReplaceProject", validate.OpReplace, owner, id, payload)
}

// PatchProject updates the attributes present in the payload. Relationship
// edges are re-pointed only for relationship attributes the payload carries.
func (s *ProjectService) PatchProject(ctx context.Context, owner string, id int64, payload validate.Payload) (*domain.Project, error) {
	s.logger.InfoContext(ctx, "patching project", slog.Int64("id", id))

	return s.update(ctx, "PatchProject", validate.OpPatch, owner, id, payload)
}

func (s *ProjectService) update(ctx context.Context, operation string, op validate.Op, owner string, id int64, payload validate.Payload) (*domain.Project, error) {
	if err := s.validator.Check(domain.KindProject, op, payload); err != nil {
		return nil, err
	}

	proj, err := s.owned(ctx, operation, owner, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(ctx, domain.KindProject, op, payload); err != nil {
		return nil, err
	}
	if err := validate.Apply(proj, payload); err != nil {
		return nil, err
	}
	proj.Owner = owner
	if err := validate.DateOrder(proj.StartDate, proj.EndDate); err != nil {
		return nil, domain.NewValidationError("end_date", err.Error())
	}

	touched := Relations{
		Client:      payload.Has("client"),
		TeamMembers: payload.Has("team_members"),
	}
	if err := s.coordinator.Rewire(ctx, proj, touched); err != nil {
		s.logger.ErrorContext(ctx, "failed to update project",
			slog.String("operation", operation),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return proj, nil
}

// DeleteProject clears the reciprocal reference on every linked client and
// team member, then deletes the project.
func (s *ProjectService) DeleteProject(ctx context.Context, owner string, id int64) error {
	s.logger.InfoContext(ctx, "deleting project", slog.Int64("id", id))

	if _, err := s.owned(ctx, "DeleteProject", owner, id); err != nil {
		return err
	}
	return s.coordinator.Delete(ctx, domain.KindProject, id)
}

// AttachMember links a client or team member to the project.
func (s *ProjectService) AttachMember(ctx context.Context, owner string, id int64, kind domain.Kind, memberID int64) error {
	s.logger.InfoContext(ctx, "attaching member to project",
		slog.Int64("project_id", id),
		slog.String("kind", kind.String()),
		slog.Int64("member_id", memberID),
	)

	edge, err := s.edge(ctx, "AttachMember", owner, id, kind, memberID)
	if err != nil {
		return err
	}
	return s.coordinator.Attach(ctx, edge)
}

// DetachMember unlinks a client or team member from the project.
func (s *ProjectService) DetachMember(ctx context.Context, owner string, id int64, kind domain.Kind, memberID int64) error {
	s.logger.InfoContext(ctx, "detaching member from project",
		slog.Int64("project_id", id),
		slog.String("kind", kind.String()),
		slog.Int64("member_id", memberID),
	)

	edge, err := s.edge(ctx, "DetachMember", owner, id, kind, memberID)
	if err != nil {
		return err
	}
	return s.coordinator.Detach(ctx, edge)
}

func (s *ProjectService) edge(ctx context.Context, operation, owner string, id int64, kind domain.Kind, memberID int64) (domain.Edge, error) {
	edgeKind, ok := domain.EdgeKindFor(kind)
	if !ok {
		return domain.Edge{}, domain.NewValidationError("kind", fmt.Sprintf("%q cannot be linked to a project", kind))
	}
	if _, err := s.owned(ctx, operation, owner, id); err != nil {
		return domain.Edge{}, err
	}
	return domain.Edge{Kind: edgeKind, ProjectID: id, MemberID: memberID}, nil
}

// owned loads the project and checks that owner owns it.
func (s *ProjectService) owned(ctx context.Context, operation, owner string, id int64) (*domain.Project, error) {
	doc, err := s.coordinator.Resolve(ctx, domain.KindProject, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch project",
			slog.String("operation", operation),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	proj, err := domain.Decode[domain.Project](doc)
	if err != nil {
		return nil, err
	}
	if proj.Owner != owner {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrForbidden)
	}
	return proj, nil
}
