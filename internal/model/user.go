package model

import "time"

const (
	RoleFarmer = "farmer"
	RoleVendor = "vendor"
)

// ValidRole reports whether role is one of the two account types.
func ValidRole(role string) bool {
	return role == RoleFarmer || role == RoleVendor
}

// User represents a registered account
type User struct {
	ID           int       `json:"id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the body of POST /api/register
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Location string `json:"location" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}
