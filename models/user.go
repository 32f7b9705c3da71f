package models

import "time"

const UserTable = "users"

const (
	RoleSuperadmin = "superadmin"
	RoleCustomer   = "customer"
	RoleVendor     = "vendor"
)

type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:20;not null;default:'customer'" json:"role"`
	Address  string `gorm:"size:255" json:"address"`
	Phone    string `gorm:"size:30" json:"phone"`

	LastSeenAt *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }

func ValidRole(r string) bool {
	switch r {
	case RoleSuperadmin, RoleCustomer, RoleVendor:
		return true
	}
	return false
}
