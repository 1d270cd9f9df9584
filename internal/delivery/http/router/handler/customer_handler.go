package handler

import (
	"net/http"

	"autopilot/internal/delivery/http/middleware"
	"autopilot/internal/delivery/http/response"
	"autopilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for the customers page and sync action.
type CustomerHandler struct {
	uc usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List returns the merchant's synced customers with derived status labels.
func (h *CustomerHandler) List(c echo.Context) error {
	merchantID, _ := c.Get(middleware.ContextMerchantID).(string)

	rows, err := h.uc.ListCustomers(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// Sync pulls customers from the POS into local storage. Unlike the page
// reads this surfaces failure to the caller: a partial sync must be visible.
func (h *CustomerHandler) Sync(c echo.Context) error {
	merchantID, _ := c.Get(middleware.ContextMerchantID).(string)
	accessToken, _ := c.Get(middleware.ContextAccessToken).(string)

	result, err := h.uc.SyncCustomers(c.Request().Context(), merchantID, accessToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Customer sync completed")
}
