// Package model defines domain entities for the application.
package model

import "time"

// User represents a user in the directory.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPatch describes a partial update to a user.
// Nil fields are left untouched.
type UserPatch struct {
	Name  *string
	Email *string
}

// IsZero returns true when the patch carries no changes.
func (p UserPatch) IsZero() bool {
	return p.Name == nil && p.Email == nil
}

// Apply sets the provided fields and refreshes UpdatedAt.
// ID and CreatedAt are never touched.
func (u *User) Apply(patch UserPatch) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	u.UpdatedAt = time.Now().UTC()
}
