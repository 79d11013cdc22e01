package ports

import (
	"context"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

// UserRepository is the credential store. Lookups return
// domain.ErrUserNotFound when nothing matches; writes surface duplicate keys
// as domain.ErrUsernameExists or domain.ErrEmailExists.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies patch to the user. Only PasswordHash is read from the
	// password fields.
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
