package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

const TokenTypeBearer = "bearer"

// AuthService implements login and token-based session reconstruction.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Login checks the credentials and issues an access token. Unknown usernames
// and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		s.logger.Debug().Str("username", username).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{AccessToken: token, TokenType: TokenTypeBearer, User: user}, nil
}

// Authenticate resolves a token into an active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}

// Authorize fails with domain.ErrNotEnoughPrivileges unless the user holds
// one of roles.
func (s *AuthService) Authorize(user *domain.User, roles ...string) error {
	if user == nil {
		return domain.ErrInvalidToken
	}
	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return domain.ErrNotEnoughPrivileges
}
