package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "github.com/chikukwa/busbooking/internal/config"
	h "github.com/chikukwa/busbooking/internal/http/handlers"
	"github.com/chikukwa/busbooking/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/config", h.GetConfig)
		api.POST("/route-info", h.RouteInfo)
		api.GET("/schedules", h.GetSchedules)
		api.GET("/stops/:city", h.GetStops)

		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:ticketId", h.GetBooking)
		bookings.GET("/:ticketId/receipt", h.GetBookingReceipt)
		bookings.DELETE("/:ticketId", h.CancelBooking)

		admin := api.Group("/admin")
		admin.POST("/login", h.AdminLogin)

		protected := admin.Group("", middleware.RequireAdmin(h.AuthVerifier()))
		protected.GET("/stats", h.AdminStats)
		protected.GET("/bookings", h.AdminGetBookings)
		protected.GET("/routes", h.AdminGetRoutes)
		protected.PUT("/routes", h.AdminUpdateRoute)
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
