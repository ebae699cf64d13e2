package server

import (
	"context"
	"net/http"
	"time"

	"roomly/internal/auth"
	"roomly/internal/booking"
	"roomly/internal/cache"
	"roomly/internal/config"
	"roomly/internal/space"
	"roomly/internal/timeslot"
	"roomly/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, slotCache *cache.Cache) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	rl := NewRateLimiter(10, 20, 5*time.Minute)
	router.Use(rl.Middleware())

	userRepo := user.NewRepository(db)
	spaceRepo := space.NewRepository(db)
	slotRepo := timeslot.NewRepository(db)
	bookingRepo := booking.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))
	spaceHandler := space.NewHandler(space.NewService(spaceRepo))
	slotHandler := timeslot.NewHandler(timeslot.NewService(slotRepo, slotCache))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, spaceRepo, slotRepo, userRepo))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.PUT("/me/password", userHandler.ChangePassword)
		protected.GET("/users/:userID", userHandler.GetUser)
		protected.PUT("/users/:userID", userHandler.UpdateUser)

		protected.GET("/spaces", spaceHandler.ListSpaces)
		protected.GET("/spaces/:spaceID", spaceHandler.GetSpace)
		protected.GET("/timeslots", slotHandler.ListTimeSlots)
		protected.GET("/timeslots/:slotID", slotHandler.GetTimeSlot)

		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.GET("/bookings/:bookingID", bookingHandler.GetBooking)
		protected.DELETE("/bookings/:bookingID", bookingHandler.DeleteBooking)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/spaces", spaceHandler.CreateSpace)
		admin.PUT("/spaces/:spaceID", spaceHandler.UpdateSpace)
		admin.DELETE("/spaces/:spaceID", spaceHandler.DeleteSpace)
		admin.GET("/spaces/:spaceID/bookings", bookingHandler.ListBookingsBySpace)

		admin.POST("/timeslots", slotHandler.CreateTimeSlot)
		admin.DELETE("/timeslots/:slotID", slotHandler.DeleteTimeSlot)
		admin.GET("/timeslots/:slotID/bookings", bookingHandler.ListBookingsBySlot)

		admin.GET("/bookings", bookingHandler.ListBookings)

		admin.GET("/users", userHandler.ListUsers)
		admin.PUT("/users/:userID/enabled", userHandler.SetUserEnabled)
		admin.DELETE("/users/:userID", userHandler.DeleteUser)
		admin.GET("/users/:userID/bookings", bookingHandler.ListBookingsByUser)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the engine for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
