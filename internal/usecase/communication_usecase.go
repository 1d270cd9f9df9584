package usecase

import (
	"context"

	"autopilot/internal/domain/entity"
)

// Communications is the data for the communications page: voice calls from
// the Retell API and SMS/email entries from the automation log. The Degraded
// flags record fallback paths and are not rendered.
type Communications struct {
	Calls    []entity.CallLog        `json:"calls"`
	Messages []*entity.AutomationLog `json:"messages"`

	CallsDegraded    bool `json:"-"`
	MessagesDegraded bool `json:"-"`
}

// CommunicationUsecase assembles the communications page.
type CommunicationUsecase interface {
	// GetCommunications fetches calls and messages concurrently. callLimit
	// caps the voice call log; zero means the configured default. Each
	// section degrades independently (mock calls, empty message list); the
	// call itself never fails.
	GetCommunications(ctx context.Context, merchantID string, callLimit int) *Communications
}
