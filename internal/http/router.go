package api

import (
	"log"
	stdhttp "net/http"

	intconfig "giraffecabs/internal/config"
	h "giraffecabs/internal/http/handlers"
	"giraffecabs/internal/http/middleware"
	"giraffecabs/internal/repositories"
	"giraffecabs/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

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

	secret := []byte(env.JWTSecret)
	auth := h.AuthHandler{Users: repositories.UserRepository{}, Secret: secret}
	bookings := h.BookingHandler{
		Bookings: services.BookingService{},
		Payments: services.PaymentService{},
		Docs:     services.DocsService{},
	}
	rentals := h.RentalHandler{Rentals: services.RentalService{}}
	tours := h.TourHandler{Tours: services.TourService{}}
	vehicles := h.VehicleHandler{Vehicles: repositories.VehicleRepository{}}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/services", h.Services)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/register", auth.Register)

		// Public browsing
		api.GET("/tours", tours.List)
		api.GET("/tours/:id", tours.Get)
		api.GET("/vehicles", vehicles.List)
		api.GET("/bookings/estimate", bookings.Estimate)

		// Authenticated
		authed := api.Group("")
		authed.Use(middleware.Auth(secret))
		{
			authed.GET("/users/me", auth.Me)

			// Bookings
			authed.POST("/bookings", bookings.Create)
			authed.GET("/bookings", bookings.List)
			authed.GET("/bookings/:id", bookings.Get)
			authed.PUT("/bookings/:id", bookings.Update)
			authed.GET("/bookings/:id/invoice", bookings.Invoice)

			// Rentals
			authed.POST("/rentals", rentals.Create)
			authed.GET("/rentals", rentals.List)
			authed.PUT("/rentals/:id", middleware.RequireRole("admin"), rentals.UpdateStatus)

			// Tours
			authed.POST("/tours/:id/bookings", tours.Book)

			// Vehicle provider portal
			authed.POST("/vehicles", middleware.RequireRole("provider"), vehicles.Create)
			authed.PUT("/vehicles/:id", middleware.RequireRole("provider"), vehicles.Update)
			authed.DELETE("/vehicles/:id", middleware.RequireRole("provider"), vehicles.Delete)
		}
	}

	return r
}
