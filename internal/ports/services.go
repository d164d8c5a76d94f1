package ports

import (
	"context"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/validate"
)

// ProjectService defines the service port for project operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method is scoped to the calling owner: a project owned by someone
// else yields domain.ErrForbidden.
type ProjectService interface {
	// CreateProject stores a new project owned by owner with no client and
	// no team members.
	// Returns domain.ErrValidation if the payload fails validation.
	CreateProject(ctx context.Context, owner string, payload validate.Payload) (*domain.Project, error)

	// ListProjects returns one page of the owner's projects and whether a
	// further page exists.
	ListProjects(ctx context.Context, owner string, page domain.Page) ([]domain.Project, bool, error)

	// GetProject returns a single project.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, owner string, id int64) (*domain.Project, error)

	// ReplaceProject overwrites every attribute, including client and
	// team_members, re-pointing both sides of every changed edge.
	ReplaceProject(ctx context.Context, owner string, id int64, payload validate.Payload) (*domain.Project, error)

	// PatchProject updates the attributes present in the payload.
	PatchProject(ctx context.Context, owner string, id int64, payload validate.Payload) (*domain.Project, error)

	// DeleteProject clears the reciprocal reference on every linked client
	// and team member, then deletes the project.
	DeleteProject(ctx context.Context, owner string, id int64) error

	// AttachMember links a client or team member to the project.
	// Returns domain.ErrReferenceNotFound or domain.ErrAlreadyLinked.
	AttachMember(ctx context.Context, owner string, id int64, kind domain.Kind, memberID int64) error

	// DetachMember unlinks a client or team member from the project.
	// Returns domain.ErrReferenceMismatch if the two do not point at each other.
	DetachMember(ctx context.Context, owner string, id int64, kind domain.Kind, memberID int64) error
}

// MemberService defines the service port for the member side of an edge.
// ClientService and TeamMemberService are its two instantiations.
type MemberService[T any] interface {
	// Create stores a new, unlinked member.
	Create(ctx context.Context, payload validate.Payload) (*T, error)

	// List returns one page of members and whether a further page exists.
	List(ctx context.Context, page domain.Page) ([]T, bool, error)

	// Get returns a single member.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id int64) (*T, error)

	// Replace overwrites every attribute including the projects reference.
	Replace(ctx context.Context, id int64, payload validate.Payload) (*T, error)

	// Patch updates the attributes present in the payload.
	Patch(ctx context.Context, id int64, payload validate.Payload) (*T, error)

	// Delete clears the linked project's reference to the member, then
	// deletes the member.
	Delete(ctx context.Context, id int64) error
}

// ClientService serves /clients.
type ClientService = MemberService[domain.Client]

// TeamMemberService serves /team_members.
type TeamMemberService = MemberService[domain.TeamMember]

// UserService defines the service port for registered callers and the admin
// role.
type UserService interface {
	// Register stores the caller if unknown. created is false when the
	// caller was already registered.
	Register(ctx context.Context, id domain.Identity) (user *domain.User, created bool, err error)

	// ListUsers returns one page of registered users.
	ListUsers(ctx context.Context, page domain.Page) ([]domain.User, bool, error)

	// ListAdmins returns every user holding the admin role.
	ListAdmins(ctx context.Context) ([]domain.User, error)

	// GrantAdmin gives the caller the admin role.
	// Returns domain.ErrUnauthorized if the caller is not registered and
	// domain.ErrValidation if the caller is already an admin.
	GrantAdmin(ctx context.Context, sub string) (*domain.User, error)

	// RevokeAdmin removes the caller's admin role.
	// Returns domain.ErrForbidden if the caller is not an admin.
	RevokeAdmin(ctx context.Context, sub string) error

	// RequireAdmin returns nil only for a registered admin.
	// Returns domain.ErrUnauthorized if the caller is not registered and
	// domain.ErrForbidden if the caller is not an admin.
	RequireAdmin(ctx context.Context, sub string) error
}
