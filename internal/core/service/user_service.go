package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

// UserService implements account management on top of the credential store.
// It owns password hashing; repositories only ever see hashes.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, bcryptCost: bcrypt.DefaultCost, logger: logger}
}

// WithBcryptCost overrides the hashing cost. Tests use bcrypt.MinCost.
func (s *UserService) WithBcryptCost(cost int) *UserService {
	s.bcryptCost = cost
	return s
}

func (s *UserService) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return s.repo.List(ctx, offset, limit)
}

// Create validates the input, checks username and email uniqueness and
// stores a new active account.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if n := utf8.RuneCountInString(input.Username); n < domain.UsernameMinLen || n > domain.UsernameMaxLen {
		return nil, domain.ErrInvalidUsername
	}
	if len(input.Password) < domain.PasswordMinLength {
		return nil, domain.ErrPasswordTooShort
	}
	if input.Role == "" {
		input.Role = domain.RoleUser
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	if err := s.ensureUsernameFree(ctx, input.Username); err != nil {
		return nil, err
	}
	if input.Email != "" {
		if err := s.ensureEmailFree(ctx, input.Email, ""); err != nil {
			return nil, err
		}
	}

	hash, err := s.hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update applies a partial update. A supplied password is re-hashed.
func (s *UserService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Role != nil && !domain.ValidRole(*patch.Role) {
		return nil, domain.ErrInvalidRole
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Email != nil && *patch.Email != "" {
		if err := s.ensureEmailFree(ctx, *patch.Email, target.ID); err != nil {
			return nil, err
		}
	}

	patch.PasswordHash = nil
	if patch.Password != nil {
		if len(*patch.Password) < domain.PasswordMinLength {
			return nil, domain.ErrPasswordTooShort
		}
		hash, err := s.hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
		patch.Password = nil
	}

	updated, err := s.repo.Update(ctx, target.ID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Str("username", updated.Username).Msg("user updated")
	return updated, nil
}

// Delete removes an account. An administrator can never delete the account
// bound to their own session. The target is resolved first so the check
// compares stored ids, whatever spelling the caller used.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor != nil && actor.ID == target.ID {
		return domain.ErrCannotDeleteSelf
	}

	ok, err := s.repo.Delete(ctx, target.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}

	s.logger.Info().Str("user_id", target.ID).Msg("user deleted")
	return nil
}

func (s *UserService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.ErrUsernameExists
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("lookup username: %w", err)
	}
}

// ensureEmailFree fails when email belongs to a user other than selfID.
func (s *UserService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.ID == selfID {
			return nil
		}
		return domain.ErrEmailExists
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("lookup email: %w", err)
	}
}

func (s *UserService) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// VerifyPassword compares a plaintext password with a stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
