package ports

import (
	"context"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
	User        *domain.User
}

// AuthService verifies credentials and resolves tokens into users.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	Authorize(user *domain.User, roles ...string) error
}

// TokenIssuer issues and verifies session tokens bound to a username.
type TokenIssuer interface {
	Issue(username string) (string, error)
	Verify(token string) (string, error)
}
