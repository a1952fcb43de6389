package models

import "time"

// Roles accepted for route gating.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User governs UI-level access gating only; it has no bearing on record
// reconciliation or statistics.
type User struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
