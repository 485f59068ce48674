package router

import (
	"net/http"

	"toolsPlaza/internal/middleware"
	"toolsPlaza/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupToolsRoutes(e *echo.Echo, handler *rest.ToolsHandler, authRequired echo.MiddlewareFunc) {
	e.GET("/tools", handler.GetAllTools)
	e.GET("/tools/:id", handler.GetToolByID)
	e.POST("/tools", handler.CreateTool, authRequired)
}

func SetupUserRoutes(e *echo.Echo, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	e.GET("/user", handler.GetAllUsers, authRequired)
	e.GET("/admin/:email", handler.CheckAdmin)
	e.PUT("/user/:email", handler.SyncUser)
	e.PUT("/user/admin/:email", handler.PromoteAdmin, authRequired, adminOnly)

	e.PUT("/userinfo/:email", handler.UpsertUserInfo)
	e.GET("/userinfo/:email", handler.GetUserInfo)
}

func SetupOrdersRoutes(e *echo.Echo, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc) {
	e.POST("/orders", handler.CreateOrder)
	e.GET("/orders/:email", handler.GetOrdersByEmail, authRequired, middleware.SelfOnly())
	e.GET("/orders/order/:id", handler.GetOrderByID)
	e.PATCH("/orders/order/:id", handler.ConfirmPayment)
	e.DELETE("/orders/:id", handler.DeleteOrder)
}

func SetupPaymentsRoutes(e *echo.Echo, handler *rest.PaymentsHandler) {
	e.POST("/create-payment-intent", handler.CreatePaymentIntent)
}

func SetupReviewsRoutes(e *echo.Echo, handler *rest.ReviewsHandler) {
	e.POST("/reviews", handler.CreateReview)
	e.GET("/reviews", handler.GetAllReviews)
}

func SetupRootRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World! From ToolsPlaza.")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
