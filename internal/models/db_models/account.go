package db_models

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleUser       = "user"
	RoleLabour     = "labour"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleLabour, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// Account is the single actor table: citizens, field workers and admins all
// live here, distinguished by Role. Role-specific columns are nullable/zero
// for the roles that do not use them.
type Account struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:user;index" json:"role"`
	Phone        string `json:"phone,omitempty"`

	// Location, inherited by complaints the account files.
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Pincode  string `json:"pincode,omitempty"`

	// Field worker attributes.
	Skills pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`
	Active bool           `gorm:"default:true" json:"active"`

	// Admin login hardening.
	SecretKeyHash      string     `json:"-"`
	MustChangePassword bool       `json:"-"`
	TemporaryPassword  bool       `json:"-"`
	PasswordChangedAt  *time.Time `json:"-"`
}

func (a *Account) IsAdmin() bool {
	return IsAdminRole(a.Role)
}
