package model

import "time"

// Role determines what a user is allowed to do.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User represents a registered customer or staff member.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Address      string
	Role         Role
	CreatedAt    time.Time
}

// Contact is the customer projection attached to orders. Order views
// never expose the full user record.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
