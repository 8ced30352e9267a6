package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/server/http/handlers"
	"github.com/strandart/shop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	addressHandler := handlers.NewAddressHandler(facade)
	analyticsHandler := handlers.NewAnalyticsHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/passcode", authHandler.RequestPasscode)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/reset", authHandler.Reset)

	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)
	api.GET("/products/:id/reviews", reviewHandler.ListByProduct)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/cart", cartHandler.List)
	authed.POST("/cart", cartHandler.Add)
	authed.PUT("/cart/:productID", cartHandler.SetQuantity)
	authed.DELETE("/cart/:productID", cartHandler.Remove)
	authed.DELETE("/cart", cartHandler.Clear)
	authed.POST("/checkout", checkoutHandler.Checkout)
	authed.POST("/checkout/buy-now", checkoutHandler.BuyNow)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.POST("/products/:id/reviews", reviewHandler.Create)
	authed.DELETE("/reviews/:id", reviewHandler.Delete)
	authed.GET("/addresses", addressHandler.List)
	authed.POST("/addresses", addressHandler.Create)
	authed.DELETE("/addresses/:id", addressHandler.Delete)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/products", catalogHandler.ListAdmin)
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.PATCH("/products/:id/status", catalogHandler.SetStatus)
	admin.POST("/products/:id/images", catalogHandler.AttachImage)
	admin.GET("/orders", orderHandler.ListAdmin)
	admin.GET("/orders/:id", orderHandler.GetAdmin)
	admin.PATCH("/orders/:id/status", orderHandler.SetStatus)
	admin.GET("/analytics/sales", analyticsHandler.Sales)
	admin.GET("/analytics/top-products", analyticsHandler.TopProducts)

	return engine
}
