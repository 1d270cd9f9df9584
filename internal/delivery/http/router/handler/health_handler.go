package handler

import (
	"net/http"

	"autopilot/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness for load balancers and uptime probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// Root is the unauthenticated landing endpoint. The frontend reads the error
// and status query markers itself; the backend only confirms it is up.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service": "autopilot",
		"status":  "ok",
	}, "")
}
