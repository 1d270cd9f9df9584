// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"autopilot/internal/domain/entity"
)

// ErrMerchantNotFound is a domain-specific error returned when a merchant is not found.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository defines the standard operations for merchant persistence.
// The application layer will depend on this interface, not the concrete implementation.
type MerchantRepository interface {
	// FindByID retrieves a single merchant by its Clover merchant identifier.
	FindByID(ctx context.Context, cloverMerchantID string) (*entity.Merchant, error)

	// Upsert creates or replaces the merchant record keyed on the Clover
	// merchant identifier. Idempotent; the stored token is always the one
	// from the most recent call.
	Upsert(ctx context.Context, merchant *entity.Merchant) error
}
