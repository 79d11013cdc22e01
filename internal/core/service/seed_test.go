package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

var defaultSeed = []SeedAccount{
	{Username: "admin", Email: "admin@example.com", Password: "admin123", Role: domain.RoleAdmin},
	{Username: "user", Email: "user@example.com", Password: "user123", Role: domain.RoleUser},
}

func TestSeedAccounts_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	users := NewUserService(repo, discardLogger).WithBcryptCost(bcrypt.MinCost)

	for i := 0; i < 2; i++ {
		if err := SeedAccounts(context.Background(), users, defaultSeed, discardLogger); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	if len(repo.users) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(repo.users))
	}
	admin, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatal(err)
	}
	if admin.Role != domain.RoleAdmin || !VerifyPassword(admin.PasswordHash, "admin123") {
		t.Fatalf("unexpected admin account: %+v", admin)
	}
}

func TestSeedAccounts_KeepsExistingPassword(t *testing.T) {
	repo := newStubUserRepo()
	users := NewUserService(repo, discardLogger).WithBcryptCost(bcrypt.MinCost)
	mustCreateUser(t, users, "admin", "", domain.RoleAdmin)

	if err := SeedAccounts(context.Background(), users, defaultSeed, discardLogger); err != nil {
		t.Fatal(err)
	}

	admin, _ := repo.FindByUsername(context.Background(), "admin")
	if !VerifyPassword(admin.PasswordHash, "pass123") {
		t.Fatal("seeding must not overwrite an existing account")
	}
}

func TestSeedAccounts_SkipsTakenEmail(t *testing.T) {
	repo := newStubUserRepo()
	users := NewUserService(repo, discardLogger).WithBcryptCost(bcrypt.MinCost)
	mustCreateUser(t, users, "someone", "user@example.com", "")

	if err := SeedAccounts(context.Background(), users, defaultSeed, discardLogger); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.FindByUsername(context.Background(), "user"); err == nil {
		t.Fatal("seed account with a taken email should be skipped")
	}
	if _, err := repo.FindByUsername(context.Background(), "admin"); err != nil {
		t.Fatalf("admin should still be seeded: %v", err)
	}
}
