package ports

import (
	"context"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

// CreateUserInput carries the data needed to create an account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UserService defines the administrator-facing account operations.
type UserService interface {
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	// Delete removes the account identified by id on behalf of actor.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
