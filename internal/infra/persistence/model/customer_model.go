package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
// The primary key is the (id, merchant_id) composite: POS customer ids are
// only unique within one merchant account.
type CustomerModel struct {
	ID              string `gorm:"type:varchar(64);primaryKey"`
	MerchantID      string `gorm:"type:varchar(64);primaryKey;index"`
	FirstName       string `gorm:"type:varchar(255)"`
	LastName        string `gorm:"type:varchar(255);index"`
	Email           string `gorm:"type:varchar(255)"`
	PhoneNumber     string `gorm:"type:varchar(50)"`
	VisitCount      int    `gorm:"not null;default:0"`
	TotalSpendCents int64  `gorm:"not null;default:0"`
	LastVisitDate   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
