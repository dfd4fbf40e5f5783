package routes

import (
	"net/http"
	"time"

	"beautybook/handlers"
	"beautybook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProfessionalRoutes registers account and profile endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.AuthenticateHandler)
		api.GET("", hb.ListProfessionalsHandler)
		api.GET("/:id", hb.GetProfessionalHandler)
		api.GET("/:id/services", hb.ListServicesHandler)

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.ProfessionalRepo))
		protected.PATCH("/me", hb.UpdateProfileHandler)
		protected.POST("/me/photo", hb.UploadPhotoHandler)
		protected.POST("/me/services", hb.CreateServiceHandler)
		protected.PUT("/me/services/:serviceId", hb.UpdateServiceHandler)
		protected.DELETE("/me/services/:serviceId", hb.DeleteServiceHandler)
	}
}

// RegisterAvailabilityRoutes registers the weekly availability editor.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfessionalRepo))
		api.GET("", hb.GetAvailabilityHandler)
		api.PUT("", hb.SetAvailabilityHandler)
		api.POST("/days/:day/enable", hb.EnableDayHandler)
		api.POST("/days/:day/disable", hb.DisableDayHandler)
		api.POST("/days/:day/ranges", hb.AddRangeHandler)
		api.DELETE("/days/:day/ranges/:index", hb.RemoveRangeHandler)
		api.PATCH("/days/:day/ranges/:index", hb.UpdateRangeHandler)
	}
}

// RegisterBookingRoutes registers the public slot and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/professionals/:id/slots", hb.DaySlotsHandler)
		api.GET("/professionals/:id/month", hb.MonthAvailabilityHandler)
		api.POST("/appointments", hb.SubmitBookingHandler)
	}
}

// RegisterDashboardRoutes registers the professional's dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfessionalRepo))
		api.GET("/appointments", hb.AppointmentsHandler)
		api.GET("/clients", hb.ClientsHandler)
		api.GET("/statistics", hb.StatisticsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BeautyBook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfessionalRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
