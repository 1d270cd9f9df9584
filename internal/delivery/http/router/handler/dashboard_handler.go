package handler

import (
	"net/http"

	"autopilot/internal/delivery/http/middleware"
	"autopilot/internal/delivery/http/response"
	"autopilot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler holds dependencies for the dashboard page.
type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview returns the merchant profile and today's revenue figures. Both
// sections are best-effort reads: a failed upstream fetch degrades to a
// placeholder instead of failing the page.
func (h *DashboardHandler) Overview(c echo.Context) error {
	merchantID, _ := c.Get(middleware.ContextMerchantID).(string)
	accessToken, _ := c.Get(middleware.ContextAccessToken).(string)

	overview := h.uc.GetOverview(c.Request().Context(), merchantID, accessToken)

	return response.Success(c, http.StatusOK, overview, "")
}
