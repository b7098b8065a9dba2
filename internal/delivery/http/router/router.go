// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"refboard/internal/delivery/http/middleware"
	"refboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReferralHandler   *handler.ReferralHandler
	InviteHandler     *handler.InviteHandler
	BrowserHandler    *handler.BrowserHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	referralHandler   *handler.ReferralHandler
	inviteHandler     *handler.InviteHandler
	browserHandler    *handler.BrowserHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		referralHandler:   params.ReferralHandler,
		inviteHandler:     params.InviteHandler,
		browserHandler:    params.BrowserHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.metricsMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Referral network reads that require authentication
	referralGroup := e.Group("/referrals")
	referralGroup.Use(r.authMiddleware.Authenticate)
	{
		referralGroup.GET("/root", r.referralHandler.GetRootProfile)
		referralGroup.GET("/:profileId/children", r.referralHandler.GetDirectReferrals)
		referralGroup.GET("/search", r.referralHandler.SearchProfiles)
	}

	e.GET("/plans", r.referralHandler.ListPlans, r.authMiddleware.Authenticate)

	// Invite routes
	inviteGroup := e.Group("/invites")
	inviteGroup.Use(r.authMiddleware.Authenticate)
	{
		inviteGroup.GET("/:username", r.inviteHandler.GetInviteLink)
		inviteGroup.GET("/:username/qr", r.inviteHandler.GetInviteQR)
	}

	// Stateful browser sessions
	browserGroup := e.Group("/browser/sessions")
	browserGroup.Use(r.authMiddleware.Authenticate)
	{
		browserGroup.POST("", r.browserHandler.CreateSession)
		browserGroup.DELETE("/:sessionId", r.browserHandler.DeleteSession)

		browserGroup.GET("/:sessionId/rows", r.browserHandler.GetRows)
		browserGroup.POST("/:sessionId/toggle/:nodeId", r.browserHandler.ToggleNode)
		browserGroup.PUT("/:sessionId/search", r.browserHandler.SetSearch)
		browserGroup.PUT("/:sessionId/filters", r.browserHandler.SetFilters)
		browserGroup.DELETE("/:sessionId/filters", r.browserHandler.ClearFilters)

		browserGroup.GET("/:sessionId/history", r.browserHandler.GetHistory)
		browserGroup.POST("/:sessionId/history/load", r.browserHandler.LoadHistory)
		browserGroup.POST("/:sessionId/history/scroll", r.browserHandler.ScrollHistory)
		browserGroup.PUT("/:sessionId/history/filters", r.browserHandler.SetHistoryFilters)
	}
}
