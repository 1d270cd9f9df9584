package usecase

import (
	"context"

	"autopilot/internal/domain/entity"
)

// DashboardOverview is the data for the dashboard landing page. The Degraded
// flags record which sections were served from adapter fallbacks; they are
// not part of the rendered payload.
type DashboardOverview struct {
	Merchant entity.MerchantInfo `json:"merchant"`
	Stats    entity.DailyStats   `json:"stats"`

	MerchantDegraded bool `json:"-"`
	StatsDegraded    bool `json:"-"`
}

// DashboardUsecase assembles the dashboard overview.
type DashboardUsecase interface {
	// GetOverview fans out the merchant-info and daily-stats fetches
	// concurrently and joins them. A failure in either degrades that one
	// section; the call itself never fails.
	GetOverview(ctx context.Context, merchantID, accessToken string) *DashboardOverview
}
