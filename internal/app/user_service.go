package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService. Users are keyed by the sub claim
// of the caller's token.
type UserService struct {
	store  ports.DocumentStore
	logger *slog.Logger
}

// NewUserService creates a UserService. A nil logger discards output.
func NewUserService(store ports.DocumentStore, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{store: store, logger: logger}
}

// Register stores the caller unless a user with the same sub exists.
func (s *UserService) Register(ctx context.Context, id domain.Identity) (*domain.User, bool, error) {
	s.logger.InfoContext(ctx, "registering user")

	existing, err := s.find(ctx, id.Sub)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		return nil, false, err
	}

	user := &domain.User{Sub: id.Sub, Name: id.Name, Email: id.Email}
	doc, err := user.Document()
	if err != nil {
		return nil, false, err
	}
	stored, err := s.store.Put(ctx, doc)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register user",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, false, fmt.Errorf("storing user: %w", err)
	}
	user.ID = stored.ID
	return user, true, nil
}

// ListUsers returns one page of registered users.
func (s *UserService) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, bool, error) {
	s.logger.InfoContext(ctx, "listing users")

	return s.query(ctx, "ListUsers", nil, page)
}

// ListAdmins returns every admin user.
func (s *UserService) ListAdmins(ctx context.Context) ([]domain.User, error) {
	s.logger.InfoContext(ctx, "listing admins")

	users, _, err := s.query(ctx, "ListAdmins", []domain.Filter{{Field: "admin", Value: true}}, domain.Page{})
	return users, err
}

// GrantAdmin gives the caller the admin role.
func (s *UserService) GrantAdmin(ctx context.Context, sub string) (*domain.User, error) {
	s.logger.InfoContext(ctx, "granting admin role")

	user, err := s.find(ctx, sub)
	if err != nil {
		return nil, err
	}
	if user.Admin {
		return nil, domain.NewValidationError("admin", "caller is already an admin")
	}

	user.Admin = true
	if err := s.save(ctx, "GrantAdmin", user); err != nil {
		return nil, err
	}
	return user, nil
}

// RevokeAdmin removes the caller's admin role.
func (s *UserService) RevokeAdmin(ctx context.Context, sub string) error {
	s.logger.InfoContext(ctx, "revoking admin role")

	user, err := s.find(ctx, sub)
	if err != nil {
		return err
	}
	if !user.Admin {
		return fmt.Errorf("caller is not an admin: %w", domain.ErrForbidden)
	}

	user.Admin = false
	return s.save(ctx, "RevokeAdmin", user)
}

// RequireAdmin returns nil only for a registered admin.
func (s *UserService) RequireAdmin(ctx context.Context, sub string) error {
	user, err := s.find(ctx, sub)
	if err != nil {
		return err
	}
	if !user.Admin {
		return fmt.Errorf("caller is not an admin: %w", domain.ErrForbidden)
	}
	return nil
}

// find returns the user registered under sub, or domain.ErrUnauthorized.
func (s *UserService) find(ctx context.Context, sub string) (*domain.User, error) {
	users, _, err := s.query(ctx, "find", []domain.Filter{{Field: "sub", Value: sub}}, domain.Page{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("caller is not registered: %w", domain.ErrUnauthorized)
	}
	return &users[0], nil
}

func (s *UserService) query(ctx context.Context, operation string, filters []domain.Filter, page domain.Page) ([]domain.User, bool, error) {
	res, err := s.store.Query(ctx, domain.KindUser, filters, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query users",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return nil, false, err
	}

	users := make([]domain.User, 0, len(res.Documents))
	for _, doc := range res.Documents {
		u, err := domain.Decode[domain.User](doc)
		if err != nil {
			return nil, false, err
		}
		users = append(users, *u)
	}
	return users, res.More, nil
}

func (s *UserService) save(ctx context.Context, operation string, user *domain.User) error {
	doc, err := user.Document()
	if err != nil {
		return err
	}
	if _, err := s.store.Put(ctx, doc); err != nil {
		s.logger.ErrorContext(ctx, "failed to save user",
			slog.String("operation", operation),
			slog.Int64("id", user.ID),
			slog.Any("error", err),
		)
		return fmt.Errorf("storing user: %w", err)
	}
	return nil
}
