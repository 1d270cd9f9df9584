// Package usecase defines the application-layer interfaces and their
// input/output models.
package usecase

import "context"

// OAuthUsecase drives the POS connect flow.
type OAuthUsecase interface {
	// CompleteConnect exchanges the authorization code, resolves the final
	// merchant identifier (token response first, callback parameter as
	// fallback), and persists the merchant record. It returns the resolved
	// merchant id for the session cookie. All side effects are all-or-
	// nothing: on any error no cookie must be set by the caller.
	//
	// Failures map onto domain errors: ErrOAuthCodeMissing,
	// ErrOAuthConfigMissing, ErrOAuthExchangeFailed, ErrMerchantIDMissing,
	// and DatabaseExecuteError for a failed persist.
	CompleteConnect(ctx context.Context, code, fallbackMerchantID string) (string, error)
}
