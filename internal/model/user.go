package model

// User roles
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// User statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User represents a dashboard account. Permissions map module names to
// the actions allowed for that module.
type User struct {
	ID               string              `json:"id"`
	Name             string              `json:"name" validate:"required"`
	Email            string              `json:"email" validate:"required,email"`
	IdentificationNo string              `json:"identificationNo" validate:"required"`
	Role             string              `json:"role" validate:"required,oneof=Admin Manager User"`
	Status           string              `json:"status" validate:"required,oneof=Active Inactive"`
	Permissions      map[string][]string `json:"permissions,omitempty"`
}
