// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/router/handler"
	"jobboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler       *handler.AccountHandler
	PasswordResetHandler *handler.PasswordResetHandler
	ListingHandler       *handler.ListingHandler
	UploadHandler        *handler.UploadHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler       *handler.AccountHandler
	passwordResetHandler *handler.PasswordResetHandler
	listingHandler       *handler.ListingHandler
	uploadHandler        *handler.UploadHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:       params.AccountHandler,
		passwordResetHandler: params.PasswordResetHandler,
		listingHandler:       params.ListingHandler,
		uploadHandler:        params.UploadHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Users and businesses share the same account routes under their own prefix.
	for _, kind := range []entity.AccountKind{entity.AccountKindUser, entity.AccountKindBusiness} {
		r.registerAccountRoutes(e.Group("/"+kind.String()), kind)
	}

	authenticate := r.authMiddleware.Authenticate
	asUser := r.authMiddleware.RequireKind(entity.AccountKindUser)
	asBusiness := r.authMiddleware.RequireKind(entity.AccountKindBusiness)

	jobGroup := e.Group("/job")
	{
		jobGroup.GET("/all/open/public", r.listingHandler.ListOpen)
		jobGroup.GET("/:id/public", r.listingHandler.GetPublic)

		jobGroup.GET("/all/open", r.listingHandler.ListOpen, authenticate)
		jobGroup.GET("/:id", r.listingHandler.Get, authenticate)

		jobGroup.POST("/create", r.listingHandler.Create, authenticate, asBusiness)
		jobGroup.PUT("/edit/:id", r.listingHandler.Edit, authenticate, asBusiness)
		jobGroup.DELETE("/delete/:id", r.listingHandler.Cancel, authenticate, asBusiness)
		jobGroup.POST("/approved-candidate/:id/:userId", r.listingHandler.Approve, authenticate, asBusiness)

		jobGroup.POST("/apply/:id", r.listingHandler.Apply, authenticate, asUser)
		jobGroup.POST("/unapply/:id", r.listingHandler.Unapply, authenticate, asUser)
	}

	e.POST("/upload/file", r.uploadHandler.UploadFile)
}

func (r *router) registerAccountRoutes(g *echo.Group, kind entity.AccountKind) {
	g.POST("/signup", r.accountHandler.Signup(kind))
	g.POST("/login", r.accountHandler.Login(kind))

	g.POST("/reset-password", r.passwordResetHandler.RequestReset(kind))
	g.POST("/reset-password/:token", r.passwordResetHandler.Redeem(kind))
	g.GET("/reset-password/:token", r.passwordResetHandler.CheckToken(kind))

	authenticate := r.authMiddleware.Authenticate
	ownKind := r.authMiddleware.RequireKind(kind)
	g.GET("/profile", r.accountHandler.GetProfile, authenticate, ownKind)
	g.DELETE("/delete", r.accountHandler.Delete, authenticate, ownKind)
}
