// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"greenscore/config"
	"greenscore/internal/delivery/api/router/handler"
	"greenscore/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	PurchaseHandler *handler.PurchaseHandler
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	purchaseHandler *handler.PurchaseHandler
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		purchaseHandler: params.PurchaseHandler,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.RegisterUser)
		usersGroup.GET("/:user_id", r.userHandler.GetUser)
		usersGroup.GET("/:user_id/green-score", r.userHandler.GetGreenScore)
		usersGroup.GET("/:user_id/purchases", r.userHandler.ListPurchases)
	}

	productsGroup := e.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/:product_id", r.productHandler.GetProduct)
		productsGroup.GET("/:product_id/qr", r.productHandler.GetProductQR)
	}

	purchasesGroup := e.Group("/purchases")
	{
		purchasesGroup.POST("", r.purchaseHandler.RecordPurchase)
		purchasesGroup.POST("/scan", r.purchaseHandler.ScanPurchase)
	}
}
