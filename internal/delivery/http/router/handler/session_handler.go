package handler

import (
	"net/http"

	"autopilot/config"
	"autopilot/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
)

// SessionHandler clears merchant sessions.
type SessionHandler struct {
	cfg *config.Config
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(cfg *config.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Logout expires the session cookie and sends the browser back to the
// landing page. Idempotent; logging out twice is harmless.
func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(middleware.ExpiredSessionCookie(h.cfg))

	return c.Redirect(http.StatusFound, "/")
}
