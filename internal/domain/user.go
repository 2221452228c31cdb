package domain

import "slices"

// Role names granted to blog users.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is a blog account. Username and Email are unique.
type User struct {
	ID       int64    `json:"id"`
	FullName string   `json:"fullName"`
	Username string   `json:"username"`
	Password string   `json:"-"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the user was granted role.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// IsAdmin reports whether the user holds RoleAdmin.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
