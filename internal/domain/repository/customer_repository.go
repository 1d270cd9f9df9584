package repository

import (
	"context"

	"autopilot/internal/domain/entity"
)

// CustomerRepository defines the operations for the locally synced customer table.
type CustomerRepository interface {
	// FindByMerchant retrieves customers for a merchant ordered by last name
	// ascending, capped at limit.
	FindByMerchant(ctx context.Context, merchantID string, limit int) ([]*entity.Customer, error)

	// UpsertBatch replaces the given customers in a single batch keyed on
	// (id, merchant_id). All rows are committed or none are.
	UpsertBatch(ctx context.Context, customers []*entity.Customer) error
}
