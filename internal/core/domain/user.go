package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	UsernameMinLen    = 3
	UsernameMaxLen    = 50
	PasswordMinLength = 6
)

// ValidRole reports whether role is one of the supported roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models an authenticated actor in the system.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch is a partial user update. Nil fields are left untouched.
// Password carries the plaintext on the way in; repositories only ever see
// PasswordHash.
type UserPatch struct {
	Email        *string
	Password     *string
	PasswordHash *string
	Role         *string
	IsActive     *bool
}
