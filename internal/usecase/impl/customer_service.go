package impl

import (
	"context"
	"log/slog"

	"autopilot/config"
	domainerrors "autopilot/internal/domain/errors"
	"autopilot/internal/domain/repository"
	"autopilot/internal/domain/service"
	"autopilot/internal/usecase"
)

// customerSyncLimit caps how many customers one sync run pulls from the POS.
const customerSyncLimit = 1000

type customerService struct {
	cfg          *config.Config
	pos          service.POSService
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates the customer listing and sync service.
func NewCustomerService(
	cfg *config.Config,
	pos service.POSService,
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		cfg:          cfg,
		pos:          pos,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListCustomers returns the merchant's synced customers with derived status
// labels, ordered by last name.
func (s *customerService) ListCustomers(ctx context.Context, merchantID string) ([]*usecase.CustomerRow, error) {
	customers, err := s.customerRepo.FindByMerchant(ctx, merchantID, s.cfg.Dashboard.CustomerPageSize)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list customers")
	}

	rows := make([]*usecase.CustomerRow, 0, len(customers))
	for _, customer := range customers {
		rows = append(rows, &usecase.CustomerRow{
			ID:              customer.ID,
			FirstName:       customer.FirstName,
			LastName:        customer.LastName,
			Email:           customer.Email,
			PhoneNumber:     customer.PhoneNumber,
			Status:          customer.Status(),
			VisitCount:      customer.VisitCount,
			TotalSpendCents: customer.TotalSpendCents,
			LastVisitDate:   customer.LastVisitDate,
		})
	}

	return rows, nil
}

// SyncCustomers pulls the merchant's customers from the POS and replaces them
// locally in one batch. Unlike the dashboard read paths there is no fallback:
// a failed fetch or upsert aborts the sync with zero rows committed.
func (s *customerService) SyncCustomers(ctx context.Context, merchantID, accessToken string) (*usecase.SyncResult, error) {
	customers, err := s.pos.FetchCustomers(ctx, merchantID, accessToken, customerSyncLimit)
	if err != nil {
		s.logger.Error("customer sync fetch failed",
			slog.String("merchantId", merchantID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrCustomerSyncFailed.WrapMessage("failed to fetch customers from POS")
	}

	if len(customers) == 0 {
		return &usecase.SyncResult{Synced: 0}, nil
	}

	if err := s.customerRepo.UpsertBatch(ctx, customers); err != nil {
		s.logger.Error("customer sync upsert failed",
			slog.String("merchantId", merchantID),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.Info("customer sync completed",
		slog.String("merchantId", merchantID),
		slog.Int("count", len(customers)),
	)

	return &usecase.SyncResult{Synced: len(customers)}, nil
}
