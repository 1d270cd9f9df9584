package impl

import (
	"context"
	"log/slog"
	"sync"

	"autopilot/config"
	"autopilot/internal/domain/entity"
	"autopilot/internal/domain/repository"
	"autopilot/internal/domain/service"
	"autopilot/internal/usecase"
)

type communicationService struct {
	cfg       *config.Config
	voiceLogs service.VoiceLogService
	logRepo   repository.AutomationLogRepository
	logger    *slog.Logger
}

// NewCommunicationService creates the communications page service.
func NewCommunicationService(
	cfg *config.Config,
	voiceLogs service.VoiceLogService,
	logRepo repository.AutomationLogRepository,
	logger *slog.Logger,
) usecase.CommunicationUsecase {
	return &communicationService{
		cfg:       cfg,
		voiceLogs: voiceLogs,
		logRepo:   logRepo,
		logger:    logger,
	}
}

// GetCommunications fetches the voice call log and the automation message
// log concurrently. Each branch maps its own failure to a fallback before
// the join, so neither aborts the other: the voice adapter already degrades
// internally, and a storage failure on the message side degrades to an empty
// list here.
func (s *communicationService) GetCommunications(ctx context.Context, merchantID string, callLimit int) *usecase.Communications {
	if callLimit <= 0 {
		callLimit = s.cfg.Dashboard.CallLogLimit
	}

	var (
		calls            service.Outcome[[]entity.CallLog]
		messages         []*entity.AutomationLog
		messagesDegraded bool
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		calls = s.voiceLogs.ListCalls(ctx, callLimit)
	}()
	go func() {
		defer wg.Done()
		found, err := s.logRepo.FindByMerchant(ctx, merchantID, s.cfg.Dashboard.MessageLogLimit)
		if err != nil {
			s.logger.Error("automation log read failed",
				slog.String("merchantId", merchantID),
				slog.Any("error", err),
			)
			messages = []*entity.AutomationLog{}
			messagesDegraded = true

			return
		}
		messages = found
	}()
	wg.Wait()

	return &usecase.Communications{
		Calls:            calls.Value,
		Messages:         messages,
		CallsDegraded:    calls.Degraded,
		MessagesDegraded: messagesDegraded,
	}
}
