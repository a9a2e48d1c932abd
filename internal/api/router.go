package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/utsavdotdev/basobas/internal/api/handlers"
	"github.com/utsavdotdev/basobas/internal/api/middleware"
	"github.com/utsavdotdev/basobas/internal/config"
	"github.com/utsavdotdev/basobas/internal/services"
	"github.com/utsavdotdev/basobas/internal/store"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, st *store.Store) (*gin.Engine, error) {
	// Initialize services needed by API handlers HERE
	sessionService, err := services.NewSessionService(st)
	if err != nil {
		return nil, err
	}
	roomService := services.NewRoomService(sessionService)
	profileService := services.NewProfileService(sessionService, roomService)
	verificationService := services.NewVerificationService(sessionService)

	r := gin.Default()

	// Initialize Middleware
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	// Apply global middleware first (order matters)
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(roomService, sessionService)
	authHandler := handlers.NewAuthHandler(cfg, sessionService, verificationService)
	favoriteHandler := handlers.NewFavoriteHandler(sessionService, profileService)
	bookingHandler := handlers.NewBookingHandler(sessionService, roomService, profileService)

	v1 := r.Group("/v1")
	{
		// Public routes
		v1.GET("/rooms", roomHandler.SearchRooms)
		v1.GET("/rooms/:id", roomHandler.GetRoomByID)
		v1.GET("/features", roomHandler.Features)
		v1.POST("/auth/login", authHandler.Login)

		v1.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		// Authenticated routes
		authRequired := v1.Group("/")
		authRequired.Use(middleware.AuthMiddleware(cfg.JwtSecret))
		{
			authRequired.GET("/me", authHandler.Me)
			authRequired.POST("/auth/logout", authHandler.Logout)
			authRequired.POST("/auth/phone/send", authHandler.SendPhoneCode)
			authRequired.POST("/auth/phone/verify", authHandler.VerifyPhoneCode)

			authRequired.GET("/favorites", favoriteHandler.ListFavorites)
			authRequired.POST("/favorites/:id", favoriteHandler.AddFavorite)
			authRequired.DELETE("/favorites/:id", favoriteHandler.RemoveFavorite)
			authRequired.GET("/profile/favorites", favoriteHandler.FavoriteRooms)

			authRequired.GET("/bookings", bookingHandler.ListBookings)
			authRequired.POST("/bookings", bookingHandler.CreateBooking)
			authRequired.POST("/bookings/:id/cancel", bookingHandler.CancelBooking)
		}

		// Landlord routes
		landlordRequired := v1.Group("/")
		landlordRequired.Use(middleware.AuthMiddleware(cfg.JwtSecret), middleware.LandlordMiddleware())
		{
			landlordRequired.POST("/rooms", roomHandler.PostRoom)
		}
	}

	return r, nil
}
