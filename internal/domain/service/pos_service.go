// Package service defines interfaces for infrastructure services consumed by
// the application layer.
package service

import (
	"context"

	"autopilot/internal/domain/entity"
)

// Outcome is the result of a best-effort read adapter call. Degraded marks
// that the upstream call failed and Value holds the adapter's fixed fallback
// instead of live data. Callers that only render collapse it to Value; tests
// distinguish the two paths explicitly.
type Outcome[T any] struct {
	Value    T
	Degraded bool
}

// OK wraps a live upstream value.
func OK[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value}
}

// Fallback wraps an adapter's fixed substitute value.
func Fallback[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value, Degraded: true}
}

// TokenGrant is the payload of a successful OAuth code exchange. MerchantID
// may be empty; the caller falls back to the callback query parameter.
type TokenGrant struct {
	AccessToken string
	MerchantID  string
}

// POSService is the Clover API boundary. Read methods (MerchantInfo,
// DailyStats) never fail: on any upstream error they log the cause and return
// a degraded Outcome carrying a fixed fallback. ExchangeCode and
// FetchCustomers return errors because their callers mutate state and must
// not proceed on silent failure.
type POSService interface {
	// ExchangeCode trades an authorization code for an access token via one
	// POST to the provider token endpoint. No retries.
	ExchangeCode(ctx context.Context, code string) (*TokenGrant, error)

	// MerchantInfo fetches the merchant profile. Responses are cached
	// in-process for about an hour per merchant.
	MerchantInfo(ctx context.Context, merchantID, accessToken string) Outcome[entity.MerchantInfo]

	// DailyStats fetches recent orders and reduces them to revenue figures.
	// Always a fresh fetch.
	DailyStats(ctx context.Context, merchantID, accessToken string) Outcome[entity.DailyStats]

	// FetchCustomers retrieves up to limit customers for the sync path.
	FetchCustomers(ctx context.Context, merchantID, accessToken string, limit int) ([]*entity.Customer, error)
}
