// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	"autopilot/config"
	"autopilot/internal/domain/entity"
	domainerrors "autopilot/internal/domain/errors"
	"autopilot/internal/domain/repository"
	"autopilot/internal/domain/service"
	"autopilot/internal/usecase"
)

type oauthService struct {
	cfg          *config.Config
	pos          service.POSService
	merchantRepo repository.MerchantRepository
	logger       *slog.Logger
}

// NewOAuthService creates the POS connect flow service.
func NewOAuthService(
	cfg *config.Config,
	pos service.POSService,
	merchantRepo repository.MerchantRepository,
	logger *slog.Logger,
) usecase.OAuthUsecase {
	return &oauthService{
		cfg:          cfg,
		pos:          pos,
		merchantRepo: merchantRepo,
		logger:       logger,
	}
}

// CompleteConnect runs the callback flow: one token exchange, one upsert.
// Steps fail fast in order so that no storage write happens without a token
// and no session is established without a successful persist.
func (s *oauthService) CompleteConnect(ctx context.Context, code, fallbackMerchantID string) (string, error) {
	if code == "" {
		return "", domainerrors.ErrOAuthCodeMissing
	}

	if s.cfg.Clover == nil || s.cfg.Clover.AppID == "" || s.cfg.Clover.AppSecret == "" {
		return "", domainerrors.ErrOAuthConfigMissing
	}

	grant, err := s.pos.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.Error("POS token exchange failed", slog.Any("error", err))

		return "", domainerrors.ErrOAuthExchangeFailed.WrapMessage("token exchange failed")
	}

	// Prefer the identifier from the token response, fall back to the
	// callback query parameter.
	merchantID := grant.MerchantID
	if merchantID == "" {
		merchantID = fallbackMerchantID
	}
	if merchantID == "" {
		s.logger.Error("merchant id missing from both token response and callback")

		return "", domainerrors.ErrMerchantIDMissing
	}

	merchant := &entity.Merchant{
		CloverMerchantID: merchantID,
		AccessToken:      grant.AccessToken,
	}
	if err := s.merchantRepo.Upsert(ctx, merchant); err != nil {
		s.logger.Error("failed to persist merchant credentials",
			slog.String("merchantId", merchantID),
			slog.Any("error", err),
		)

		return "", err
	}

	s.logger.Info("merchant connected", slog.String("merchantId", merchantID))

	return merchantID, nil
}
