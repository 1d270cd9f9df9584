package model

import (
	"time"

	"github.com/google/uuid"
)

// AutomationLogModel is the GORM-specific struct for the 'automation_logs'
// table. This service only reads it; the automation pipeline owns writes.
type AutomationLogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID  string    `gorm:"type:varchar(64);not null;index"`
	ActionType  string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AutomationLogModel) TableName() string {
	return "automation_logs"
}
