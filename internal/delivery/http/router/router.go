// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"autopilot/internal/delivery/http/middleware"
	"autopilot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OAuthHandler         *handler.OAuthHandler
	DashboardHandler     *handler.DashboardHandler
	CustomerHandler      *handler.CustomerHandler
	CommunicationHandler *handler.CommunicationHandler
	SessionHandler       *handler.SessionHandler
	SessionMiddleware    *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	oauthHandler         *handler.OAuthHandler
	dashboardHandler     *handler.DashboardHandler
	customerHandler      *handler.CustomerHandler
	communicationHandler *handler.CommunicationHandler
	sessionHandler       *handler.SessionHandler
	sessionMiddleware    *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		oauthHandler:         params.OAuthHandler,
		dashboardHandler:     params.DashboardHandler,
		customerHandler:      params.CustomerHandler,
		communicationHandler: params.CommunicationHandler,
		sessionHandler:       params.SessionHandler,
		sessionMiddleware:    params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Public endpoints
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)
	e.GET("/oauth/clover/callback", r.oauthHandler.Callback)
	e.POST("/logout", r.sessionHandler.Logout)

	// Merchant pages gated on the session cookie
	app := e.Group("", r.sessionMiddleware.RequireMerchant)
	{
		app.GET("/dashboard", r.dashboardHandler.Overview)
		app.GET("/customers", r.customerHandler.List)
		app.POST("/customers/sync", r.customerHandler.Sync)
		app.GET("/communications", r.communicationHandler.List)
	}
}
