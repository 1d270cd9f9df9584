package handler

import (
	"net/http"

	"autopilot/internal/delivery/http/middleware"
	"autopilot/internal/delivery/http/response"
	"autopilot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CommunicationHandler holds dependencies for the communications page.
type CommunicationHandler struct {
	uc usecase.CommunicationUsecase
}

// NewCommunicationHandler is the constructor for CommunicationHandler, injected by Fx.
func NewCommunicationHandler(uc usecase.CommunicationUsecase) *CommunicationHandler {
	return &CommunicationHandler{uc: uc}
}

// ListCommunicationsRequest represents the query parameters for the
// communications page. Limit caps the voice call log; omitted means the
// configured default.
type ListCommunicationsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// List returns the voice call log and the automation message log. Each side
// degrades independently, so the page always has something to render.
func (h *CommunicationHandler) List(c echo.Context) error {
	var req ListCommunicationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid communications query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	merchantID, _ := c.Get(middleware.ContextMerchantID).(string)

	comms := h.uc.GetCommunications(c.Request().Context(), merchantID, req.Limit)

	return response.Success(c, http.StatusOK, comms, "")
}
