// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"liftlog/internal/delivery/http/middleware"
	"liftlog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SplitHandler   *handler.SplitHandler
	WorkoutHandler *handler.WorkoutHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	splitHandler   *handler.SplitHandler
	workoutHandler *handler.WorkoutHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		splitHandler:   params.SplitHandler,
		workoutHandler: params.WorkoutHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)
	e.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	// Split routes: reads are public, writes require authentication.
	splitGroup := e.Group("/splits")
	{
		splitGroup.GET("", r.splitHandler.List)
		splitGroup.GET("/:id", r.splitHandler.Get)
		splitGroup.POST("", r.splitHandler.Create, r.authMiddleware.Authenticate)
		splitGroup.PUT("/:id", r.splitHandler.Update, r.authMiddleware.Authenticate)
		splitGroup.DELETE("/:id", r.splitHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Workout routes, nested under their split.
	workoutGroup := e.Group("/splits/:split_id/workouts")
	{
		workoutGroup.GET("", r.workoutHandler.List)
		workoutGroup.GET("/:id", r.workoutHandler.Get)
		workoutGroup.POST("", r.workoutHandler.Create, r.authMiddleware.Authenticate)
		workoutGroup.PUT("/:id", r.workoutHandler.Update, r.authMiddleware.Authenticate)
		workoutGroup.DELETE("/:id", r.workoutHandler.Delete, r.authMiddleware.Authenticate)
	}
}
