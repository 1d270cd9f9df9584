package middleware

import (
	"net/http"

	"autopilot/config"
	"autopilot/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// SessionCookieName is the cookie carrying the connected merchant's
	// Clover identifier.
	SessionCookieName = "session_merchant_id"

	// sessionMaxAge is one week in seconds.
	sessionMaxAge = 604800

	// ContextMerchantID and ContextAccessToken are the echo context keys the
	// session middleware populates for downstream handlers.
	ContextMerchantID  = "merchantID"
	ContextAccessToken = "accessToken"
)

// NewSessionCookie builds the session cookie set after a successful POS
// connect. Secure is only set in production so the flow works on plain
// localhost during development.
func NewSessionCookie(cfg *config.Config, merchantID string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    merchantID,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that clears the session.
func ExpiredSessionCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionMiddleware gates merchant pages on the session cookie. It resolves
// the cookie to a stored merchant so that handlers receive a live access
// token, not just an identifier.
type SessionMiddleware struct {
	cfg          *config.Config
	merchantRepo repository.MerchantRepository
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(cfg *config.Config, merchantRepo repository.MerchantRepository) *SessionMiddleware {
	return &SessionMiddleware{cfg: cfg, merchantRepo: merchantRepo}
}

// RequireMerchant redirects to the landing page when no valid session exists.
// A cookie naming an unknown merchant is treated as stale: it is cleared and
// the request is redirected rather than erroring.
func (m *SessionMiddleware) RequireMerchant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.Redirect(http.StatusFound, "/")
		}

		merchant, err := m.merchantRepo.FindByID(c.Request().Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, repository.ErrMerchantNotFound) {
				c.SetCookie(ExpiredSessionCookie(m.cfg))

				return c.Redirect(http.StatusFound, "/")
			}

			// Storage failure: send the browser back to the entry point but
			// keep the cookie, the session may still be valid once the
			// database recovers.
			return c.Redirect(http.StatusFound, "/")
		}

		c.Set(ContextMerchantID, merchant.CloverMerchantID)
		c.Set(ContextAccessToken, merchant.AccessToken)

		return next(c)
	}
}
