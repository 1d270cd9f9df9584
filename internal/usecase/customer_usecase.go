package usecase

import (
	"context"
	"time"

	"autopilot/internal/domain/entity"
)

// CustomerRow is one customer listing entry with its derived loyalty status.
type CustomerRow struct {
	ID              string                `json:"id"`
	FirstName       string                `json:"first_name"`
	LastName        string                `json:"last_name"`
	Email           string                `json:"email,omitempty"`
	PhoneNumber     string                `json:"phone_number,omitempty"`
	Status          entity.CustomerStatus `json:"status"`
	VisitCount      int                   `json:"visit_count"`
	TotalSpendCents int64                 `json:"total_spend_cents"`
	LastVisitDate   *time.Time            `json:"last_visit_date,omitempty"`
}

// SyncResult reports how many customers a sync run committed.
type SyncResult struct {
	Synced int `json:"synced"`
}

// CustomerUsecase serves the customers page and the POS customer sync.
type CustomerUsecase interface {
	// ListCustomers returns the merchant's synced customers ordered by last
	// name, capped at the configured page size.
	ListCustomers(ctx context.Context, merchantID string) ([]*CustomerRow, error)

	// SyncCustomers fetches customers from the POS and batch-upserts them.
	// Any upstream or storage failure aborts with zero rows committed.
	SyncCustomers(ctx context.Context, merchantID, accessToken string) (*SyncResult, error)
}
