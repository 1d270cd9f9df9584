package impl

import (
	"context"
	"sync"

	"autopilot/internal/domain/entity"
	"autopilot/internal/domain/service"
	"autopilot/internal/usecase"
)

type dashboardService struct {
	pos service.POSService
}

// NewDashboardService creates the dashboard overview service.
func NewDashboardService(pos service.POSService) usecase.DashboardUsecase {
	return &dashboardService{
		pos: pos,
	}
}

// GetOverview issues the merchant-info and daily-stats fetches concurrently.
// Each adapter owns its fallback, so one upstream failure never cancels or
// empties the sibling section. The join is a plain WaitGroup: both branches
// always complete.
func (s *dashboardService) GetOverview(ctx context.Context, merchantID, accessToken string) *usecase.DashboardOverview {
	var (
		info  service.Outcome[entity.MerchantInfo]
		stats service.Outcome[entity.DailyStats]
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		info = s.pos.MerchantInfo(ctx, merchantID, accessToken)
	}()
	go func() {
		defer wg.Done()
		stats = s.pos.DailyStats(ctx, merchantID, accessToken)
	}()
	wg.Wait()

	return &usecase.DashboardOverview{
		Merchant:         info.Value,
		Stats:            stats.Value,
		MerchantDegraded: info.Degraded,
		StatsDegraded:    stats.Degraded,
	}
}
