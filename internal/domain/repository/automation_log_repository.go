package repository

import (
	"context"

	"autopilot/internal/domain/entity"
)

// AutomationLogRepository reads the automation outreach log. Entries are
// written by the automation pipeline, never by this service.
type AutomationLogRepository interface {
	// FindByMerchant retrieves log entries for a merchant, newest first,
	// capped at limit.
	FindByMerchant(ctx context.Context, merchantID string, limit int) ([]*entity.AutomationLog, error)
}
