// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"leadforge/config"
	"leadforge/internal/delivery/http/middleware"
	"leadforge/internal/delivery/http/router/handler"
	"leadforge/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	SearchHandler  *handler.SearchHandler
	LeadHandler    *handler.LeadHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	searchHandler  *handler.SearchHandler
	leadHandler    *handler.LeadHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		searchHandler:  params.SearchHandler,
		leadHandler:    params.LeadHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.GET("/status", r.userHandler.Status, r.authMiddleware.Authenticate)
	}

	// Search routes are public and rate limited per client IP
	searchGroup := e.Group("/api/search")
	searchGroup.Use(middleware.NewRateLimiter(r.config.HTTP.SearchRateLimit))
	{
		searchGroup.GET("/osm-places", r.searchHandler.SearchPlaces)
		searchGroup.GET("/osm-places/geojson", r.searchHandler.SearchPlacesGeoJSON)
		searchGroup.GET("/categories", r.searchHandler.Categories)
	}

	// Saved leads require an authenticated account holding the user role
	leadsGroup := e.Group("/api/leads")
	leadsGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleUser))
	{
		leadsGroup.POST("", r.leadHandler.SaveLead)
		leadsGroup.GET("", r.leadHandler.ListLeads)
		leadsGroup.GET("/:id", r.leadHandler.GetLead)
		leadsGroup.PUT("/:id", r.leadHandler.UpdateLead)
		leadsGroup.DELETE("/:id", r.leadHandler.DeleteLead)
		leadsGroup.POST("/:id/enrich", r.leadHandler.RefreshLead)
		leadsGroup.GET("/:id/qrcode", r.leadHandler.LeadQRCode)
	}
}
