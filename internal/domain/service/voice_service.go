package service

import (
	"context"

	"autopilot/internal/domain/entity"
)

// VoiceLogService is the Retell API boundary. ListCalls never fails: a
// missing API key, transport error, non-2xx status, or malformed body all
// degrade to a short fixed list of example call records so the
// communications page always renders.
type VoiceLogService interface {
	ListCalls(ctx context.Context, limit int) Outcome[[]entity.CallLog]
}
