package models

import "time"

const GoodsTable = "goods"
const GoodsCategoryTable = "goods_categories"

const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
)

// Banks accepted for transfer payments.
var Banks = []string{"bca", "bni", "bri", "mandiri"}

// GoodsCategory defines a per-day unit price for a class of rentable goods.
// Price is stored as text the way the upstream schema kept it; the booking
// flow parses it and treats a non-numeric value as data corruption.
type GoodsCategory struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Price       string `gorm:"size:32;not null" json:"price"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (GoodsCategory) TableName() string { return GoodsCategoryTable }

// Goods is one rental transaction: a branch, a category and a renter over a
// date range. DayTotal and TotalPrice are derived at creation and never
// recomputed; the only mutation after insert is the status toggle.
type Goods struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	VendorBranchID string `gorm:"type:uuid;index;not null" json:"vendorBranchId"`
	CategoryID     string `gorm:"type:uuid;index;not null" json:"categoryId"`
	UserID         string `gorm:"type:uuid;index;not null" json:"userId"`

	Name     string `gorm:"size:200;not null" json:"name"`
	Quantity int    `gorm:"not null" json:"quantity"`

	DateIn   string `gorm:"size:10;not null" json:"dateIn"`
	DateOut  string `gorm:"size:10;not null" json:"dateOut"`
	DayTotal int    `gorm:"not null" json:"dayTotal"`

	PaymentMethod string `gorm:"size:20;not null" json:"paymentMethod"`
	Bank          string `gorm:"size:20" json:"bank,omitempty"`

	// true = active/paid, false = closed/outstanding. Set explicitly on
	// create; a column default would make gorm drop explicit false writes.
	Status     bool  `gorm:"not null" json:"status"`
	TotalPrice int64 `gorm:"not null" json:"totalPrice"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Goods) TableName() string { return GoodsTable }

func ValidBank(b string) bool {
	for _, known := range Banks {
		if b == known {
			return true
		}
	}
	return false
}
