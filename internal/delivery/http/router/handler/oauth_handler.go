// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"autopilot/config"
	"autopilot/internal/delivery/http/middleware"
	domainerrors "autopilot/internal/domain/errors"
	"autopilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler holds dependencies for the POS connect flow.
type OAuthHandler struct {
	uc     usecase.OAuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase, cfg *config.Config, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Callback handles the provider redirect after the merchant approves the app.
// Browsers land here mid-OAuth, so failures never render JSON: every outcome
// is a redirect, with an error marker the frontend turns into a banner.
func (h *OAuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	fallbackMerchantID := c.QueryParam("merchant_id")

	merchantID, err := h.uc.CompleteConnect(c.Request().Context(), code, fallbackMerchantID)
	if err != nil {
		h.logger.Error("POS connect failed", slog.Any("error", err))

		return c.Redirect(http.StatusFound, "/?error="+connectErrorMarker(err))
	}

	c.SetCookie(middleware.NewSessionCookie(h.cfg, merchantID))

	return c.Redirect(http.StatusFound, "/dashboard?status=connected")
}

// connectErrorMarker maps connect flow failures onto the redirect markers the
// frontend recognizes.
func connectErrorMarker(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrOAuthCodeMissing):
		return "no_code"
	case errors.Is(err, domainerrors.ErrOAuthConfigMissing):
		return "missing_env_vars"
	case errors.Is(err, domainerrors.ErrOAuthExchangeFailed):
		return "token_failed"
	case errors.Is(err, domainerrors.ErrMerchantIDMissing):
		return "missing_merchant_id"
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.ErrorCode() == "DATABASE_EXECUTE_FAILED" {
		return "db_save_failed"
	}

	return "internal"
}
