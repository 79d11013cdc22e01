package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

// SeedAccount describes an account that must exist after start-up.
type SeedAccount struct {
	Username string
	Email    string
	Password string
	Role     string
}

// SeedAccounts creates every account whose username is not taken yet.
// Running it again is a no-op, and losing a creation race to another
// instance counts as success.
func SeedAccounts(ctx context.Context, users *UserService, accounts []SeedAccount, logger zerolog.Logger) error {
	for _, a := range accounts {
		_, err := users.repo.FindByUsername(ctx, a.Username)
		if err == nil {
			logger.Debug().Str("username", a.Username).Msg("seed account already present")
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed %s: %w", a.Username, err)
		}

		_, err = users.Create(ctx, ports.CreateUserInput{
			Username: a.Username,
			Email:    a.Email,
			Password: a.Password,
			Role:     a.Role,
		})
		if errors.Is(err, domain.ErrUsernameExists) {
			continue
		}
		if errors.Is(err, domain.ErrEmailExists) {
			logger.Warn().Str("username", a.Username).Str("email", a.Email).Msg("seed account skipped, email taken")
			continue
		}
		if err != nil {
			return fmt.Errorf("seed %s: %w", a.Username, err)
		}
		logger.Info().Str("username", a.Username).Str("role", a.Role).Msg("default account created")
	}
	return nil
}
