package models

import "time"

// User is a stored account. PasswordHash always holds a bcrypt hash once the
// record has been persisted.
type User struct {
	ID             string
	Email          string
	PasswordHash   string
	FullName       string
	Phone          *string
	Role           Role
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// HasRole reports whether the user's role is one of allowed.
func (u *User) HasRole(allowed ...Role) bool {
	if u == nil {
		return false
	}
	for _, r := range allowed {
		if u.Role == r {
			return true
		}
	}
	return false
}
