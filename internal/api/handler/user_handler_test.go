package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

var adminUser = &domain.User{ID: "u1", Username: "admin", Role: domain.RoleAdmin, IsActive: true}

func TestUserHandler_List_Defaults(t *testing.T) {
	var gotOffset, gotLimit int
	h := NewUserHandler(&stubUserService{
		listFn: func(_ context.Context, offset, limit int) ([]*domain.User, error) {
			gotOffset, gotLimit = offset, limit
			return []*domain.User{adminUser}, nil
		},
	})
	c, rec := newContext(http.MethodGet, "/api/users", "", adminUser)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotOffset != 0 || gotLimit != 100 {
		t.Fatalf("expected skip 0 limit 100, got %d %d", gotOffset, gotLimit)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["username"] != "admin" {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestUserHandler_List_BadQuery(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, _ := newContext(http.MethodGet, "/api/users?skip=abc", "", adminUser)

	if err := h.List(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUserHandler_Create(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Username != "bob" || in.Role != "" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u2", Username: in.Username, Role: domain.RoleUser, IsActive: true}, nil
		},
	})
	c, rec := newContext(http.MethodPost, "/api/users", `{"username":"bob","password":"secret1"}`, adminUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_Validation(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	cases := map[string]string{
		"short username": `{"username":"ab","password":"secret1"}`,
		"short password": `{"username":"bob","password":"123"}`,
		"bad email":      `{"username":"bob","password":"secret1","email":"nope"}`,
		"bad role":       `{"username":"bob","password":"secret1","role":"root"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/api/users", body, adminUser)
			err := h.Create(c)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUserHandler_Update_PassesPatch(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		updateFn: func(_ context.Context, id string, p domain.UserPatch) (*domain.User, error) {
			if id != "u2" || p.IsActive == nil || *p.IsActive || p.Role != nil || p.Email != nil {
				t.Fatalf("unexpected patch for %s: %+v", id, p)
			}
			return &domain.User{ID: id, Username: "bob", Role: domain.RoleUser}, nil
		},
	})
	c, rec := newContext(http.MethodPut, "/api/users/u2", `{"is_active":false}`, adminUser)
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"is_active":false`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Delete(t *testing.T) {
	var actor *domain.User
	h := NewUserHandler(&stubUserService{
		deleteFn: func(_ context.Context, a *domain.User, id string) error {
			actor = a
			if id == a.ID {
				return domain.ErrCannotDeleteSelf
			}
			return nil
		},
	})

	c, rec := newContext(http.MethodDelete, "/api/users/u2", "", adminUser)
	c.SetParamNames("id")
	c.SetParamValues("u2")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if actor == nil || actor.ID != "u1" {
		t.Fatalf("actor not passed through: %+v", actor)
	}

	c, _ = newContext(http.MethodDelete, "/api/users/u1", "", adminUser)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Delete(c); !errors.Is(err, domain.ErrCannotDeleteSelf) {
		t.Fatalf("expected ErrCannotDeleteSelf, got %v", err)
	}
}
