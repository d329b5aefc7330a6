// Package account models the three shop account kinds (admin, seller,
// customer) as one entity with a role discriminant, persisted in per-role
// tables.
package account

import (
	"strings"
	"time"
)

// Role discriminates the account kind and selects the backing table.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleSeller   Role = "SELLER"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole normalizes a role string; ok is false for unknown values.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleSeller:
		return RoleSeller, true
	case RoleCustomer:
		return RoleCustomer, true
	}
	return "", false
}

// Account statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Account is the stored shape shared by all three roles. StoreName is only
// meaningful for sellers, EmailVerified only for customers.
type Account struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	Role          Role
	Status        string
	Address       string
	StoreName     string
	EmailVerified bool
	CreatedAt     time.Time
}

// PublicView is the client-facing projection. It has no password field at
// all, so a hash can never leak through serialization.
type PublicView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	Status        string `json:"status"`
	Address       string `json:"address,omitempty"`
	StoreName     string `json:"storeName,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}

// Public projects the account into its client-facing view.
func (a *Account) Public() PublicView {
	return PublicView{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Role:          a.Role,
		Status:        a.Status,
		Address:       a.Address,
		StoreName:     a.StoreName,
		EmailVerified: a.EmailVerified,
	}
}

// NormalizeEmail trims and lower-cases an address; e-mail uniqueness is
// case-insensitive everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
