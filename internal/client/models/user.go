// Package models contains the data transfer objects exchanged with the
// POV-Review backend, plus the closed role and genre enumerations used
// by the rest of the client.
package models

import "time"

// Role is a user role as reported by the backend. The set of values is
// closed; the client never invents roles, it only reads them.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known role values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is a backend user account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []Role    `json:"roles"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin is a shorthand for HasRole(RoleAdmin).
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// UpdateUserInput is a partial profile update. Zero-valued fields are omitted
// from the request body.
type UpdateUserInput struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}
