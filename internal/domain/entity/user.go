// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// User is the read-only view of an account owned by the identity service.
// Notifications only need enough of it to address and greet the person.
type User struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the user.
	Email       string    `json:"email"`        // The user's primary contact email, used as the email channel address.
	DisplayName string    `json:"display_name"` // The user's full name, may be empty.
}

// Name returns the display name, falling back to the email address.
func (u *User) Name() string {
	if u == nil {
		return ""
	}

	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}

	return u.Email
}
