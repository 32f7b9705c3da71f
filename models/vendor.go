package models

import "time"

const VendorTable = "vendors"
const VendorBranchTable = "vendor_branches"

// Vendor status lifecycle. New vendors start pending until an admin
// activates them.
const (
	VendorActive    = "active"
	VendorSuspended = "suspended"
	VendorPending   = "pending"
)

type Vendor struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string `gorm:"type:uuid;index;not null" json:"userId"`
	CompanyName    string `gorm:"size:200;not null" json:"companyName"`
	CompanyAddress string `gorm:"size:255;not null" json:"companyAddress"`
	Email          string `gorm:"size:255" json:"email"`
	Phone          string `gorm:"size:30" json:"phone"`
	Status         string `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Vendor) TableName() string { return VendorTable }

type VendorBranch struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID string `gorm:"type:uuid;index;not null" json:"vendorId"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Address  string `gorm:"size:255" json:"address"`
	Phone    string `gorm:"size:30" json:"phone"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (VendorBranch) TableName() string { return VendorBranchTable }

func ValidVendorStatus(s string) bool {
	switch s {
	case VendorActive, VendorSuspended, VendorPending:
		return true
	}
	return false
}
