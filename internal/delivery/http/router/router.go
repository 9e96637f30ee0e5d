// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/delivery/http/middleware"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	VehicleHandler *handler.VehicleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	vehicleHandler *handler.VehicleHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		vehicleHandler: params.VehicleHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, open to anonymous callers
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Inventory routes: reads are public, mutations need a valid token
	veiculosGroup := e.Group("/veiculos")
	{
		veiculosGroup.GET("", r.vehicleHandler.List)
		veiculosGroup.GET("/:chassi", r.vehicleHandler.GetByChassi)
		veiculosGroup.POST("", r.vehicleHandler.Create, r.authMiddleware.Authenticate)
		veiculosGroup.PUT("/:chassi", r.vehicleHandler.Update, r.authMiddleware.Authenticate)
		veiculosGroup.DELETE("/:chassi", r.vehicleHandler.Delete, r.authMiddleware.Authenticate)
	}
}
