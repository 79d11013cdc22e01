package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
	"github.com/tpemanager/tpe-manager/internal/core/service"
	mongodb "github.com/tpemanager/tpe-manager/internal/infrastructure/db/mongo"
	"github.com/tpemanager/tpe-manager/pkg/logger"
)

const createAdminTimeout = 30 * time.Second

func createAdminCommand() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), createAdminTimeout)
			defer cancel()

			client, db, err := openDatabase(ctx, cfg.Mongo, log)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Disconnect(context.Background())
			}()

			users := service.NewUserService(mongodb.NewUserRepository(db), logger.Component("users"))
			user, err := users.Create(ctx, ports.CreateUserInput{
				Username: username,
				Email:    email,
				Password: password,
				Role:     domain.RoleAdmin,
			})
			if errors.Is(err, domain.ErrUsernameExists) {
				return fmt.Errorf("user %q already exists", username)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "admin %q created (id %s)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "admin", "administrator username")
	cmd.Flags().StringVar(&email, "email", "", "administrator email")
	cmd.Flags().StringVar(&password, "password", "", "administrator password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
