package entity

import (
	"time"

	"github.com/google/uuid"
)

// AutomationLog records a single automated outreach action (SMS or email)
// taken on a merchant's behalf. This service only reads these entries; they
// are written by the automation pipeline.
type AutomationLog struct {
	ID          uuid.UUID `json:"id"`
	MerchantID  string    `json:"merchant_id"`
	ActionType  string    `json:"action_type"` // e.g. "sms_reminder", "email_campaign".
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
