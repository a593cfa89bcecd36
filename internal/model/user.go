package model

import "time"

// Role constants
const (
	RoleAdmin     = "admin"
	RoleOfficer   = "officer"
	RoleRequester = "requester"
)

// User is a system account. Passwords are stored and compared in plaintext:
// the records round-trip through export/import and the external sheet relay,
// so the stored shape is part of the data contract.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOfficer || role == RoleRequester
}

// DefaultUsers returns the accounts seeded into an empty store.
func DefaultUsers(now time.Time) []User {
	return []User{
		{ID: "U001", Username: "admin", Password: "admin123", Name: "System Administrator", Role: RoleAdmin, Active: true, CreatedAt: now},
		{ID: "U002", Username: "officer1", Password: "officer123", Name: "Fuel Officer", Role: RoleOfficer, Active: true, CreatedAt: now},
		{ID: "U003", Username: "user1", Password: "user123", Name: "Requester 1", Role: RoleRequester, Active: true, CreatedAt: now},
	}
}
