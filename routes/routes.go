package routes

import (
	"net/http"
	"time"

	"barberia/config"
	"barberia/handlers"
	"barberia/middleware"
	"barberia/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		status := "ok"
		if !health.Healthy {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "message": "Barbería booking service", "health": health})
	})
}

// RegisterCatalogRoutes exposes the fixed offer.
func RegisterCatalogRoutes(r *gin.Engine) {
	r.GET("/api/catalog", handlers.CatalogHandler)
}

// RegisterBookingRoutes sets up the endpoints for the booking engine and wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/slots", hb.Booking.TakenSlotsHandler)
		bookingGroup.GET("/availability", hb.Booking.AvailabilityHandler)
		bookingGroup.POST("/appointments", hb.Booking.CreateAppointmentHandler)
	}

	wizardGroup := bookingGroup.Group("/wizard")
	{
		wizardGroup.POST("", hb.Wizard.OpenHandler)
		wizardGroup.GET("/:id", hb.Wizard.GetHandler)
		wizardGroup.PUT("/:id/service", hb.Wizard.SelectServiceHandler)
		wizardGroup.PUT("/:id/barber", hb.Wizard.SelectBarberHandler)
		wizardGroup.PUT("/:id/date", hb.Wizard.SelectDateHandler)
		wizardGroup.PUT("/:id/time", hb.Wizard.SelectTimeHandler)
		wizardGroup.POST("/:id/next", hb.Wizard.NextHandler)
		wizardGroup.POST("/:id/back", hb.Wizard.BackHandler)
		wizardGroup.POST("/:id/submit", hb.Wizard.SubmitHandler)
		wizardGroup.DELETE("/:id", hb.Wizard.CloseHandler)

		wizardGroup.GET("/:id/calendar-link", hb.Calendar.LinkHandler)
		wizardGroup.GET("/:id/calendar.ics", hb.Calendar.ICSHandler)
		wizardGroup.GET("/:id/qr.png", hb.Calendar.QRHandler)
		wizardGroup.GET("/:id/receipt.pdf", hb.Calendar.ReceiptHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.LoginHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuthMiddleware(hb.AdminGate))
		protected.GET("/appointments", hb.Admin.DailyAppointmentsHandler)
		protected.GET("/dates", hb.Admin.BookedDatesHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := config.AppConfig.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	// Wildcard origins cannot be combined with credentials.
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
