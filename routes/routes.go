package routes

import (
	"net/http"

	"github.com/jibrilosman/self-order-kiosk/configs"
	"github.com/jibrilosman/self-order-kiosk/controllers"
	"github.com/jibrilosman/self-order-kiosk/middlewares"
	"github.com/jibrilosman/self-order-kiosk/pkg/metrics"
	"github.com/jibrilosman/self-order-kiosk/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps is everything the HTTP surface needs from main.
type Deps struct {
	Config   *configs.Config
	Log      logrus.FieldLogger
	Orders   *services.OrderService
	Products *services.ProductService
	Auth     *services.AuthService
	// Board serves the staff order feed; nil leaves /ws/orders unmounted.
	Board  gin.HandlerFunc
	Checks map[string]controllers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RequestLogger(d.Log))
	r.Use(metrics.Middleware())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	healthCtrl := controllers.NewHealthController(d.Checks)
	orderCtrl := controllers.NewOrderController(d.Orders, cfg.StrictValidation)
	productCtrl := controllers.NewProductController(d.Products)
	authCtrl := controllers.NewAuthController(d.Auth)

	staff := middlewares.StaffOnly(cfg.StaffJWTSecret)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/", healthCtrl.Health)
		api.GET("/health", healthCtrl.Health)
		api.GET("/ready", healthCtrl.Ready)

		api.GET("/categories", productCtrl.Categories)
		api.GET("/products", productCtrl.List)
		api.GET("/products/seed", productCtrl.Seed)
		api.POST("/products", staff, productCtrl.Create)

		api.POST("/orders", middlewares.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst), orderCtrl.Create)
		api.GET("/orders", orderCtrl.List)
		api.GET("/orders/all", staff, orderCtrl.ListAll)
		api.GET("/orders/:id", orderCtrl.Detail)
		api.PUT("/orders/:id", staff, orderCtrl.Update)

		api.POST("/auth/staff", authCtrl.StaffLogin)
		api.GET("/auth/staff/me", staff, authCtrl.Me)
	}

	if d.Board != nil {
		r.GET("/ws/orders", staff, d.Board)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
}
