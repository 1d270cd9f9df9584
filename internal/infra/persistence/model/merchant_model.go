// Package model contains the GORM-specific persistence structs.
package model

import "time"

// MerchantModel is the GORM-specific struct for the 'merchants' table.
// One row per connected Clover merchant; replaced on every OAuth completion.
type MerchantModel struct {
	CloverMerchantID string `gorm:"type:varchar(64);primary_key"`
	AccessToken      string `gorm:"type:text;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
