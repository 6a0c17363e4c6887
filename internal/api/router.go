package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/localbiz/directory-api/internal/api/handler"
	"github.com/localbiz/directory-api/internal/api/middleware"
	"github.com/localbiz/directory-api/internal/core/domain"
	"github.com/localbiz/directory-api/internal/core/ports"
	"github.com/localbiz/directory-api/internal/core/service"
	mongorepo "github.com/localbiz/directory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/localbiz/directory-api/internal/infrastructure/db/redis"
)

// Deps carries everything the router needs to assemble the application.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Uploader  ports.MediaUploader
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(deps.DB)
	businessRepo := mongorepo.NewBusinessRepository(deps.DB)
	bookingRepo := mongorepo.NewBookingRepository(deps.DB)
	cache := redisdb.NewBusinessCache(deps.Redis)

	tokens := service.NewTokenService(deps.JWTSecret, deps.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, deps.Logger)
	businessService := service.NewBusinessService(businessRepo, deps.Uploader, cache, deps.Logger)
	bookingService := service.NewBookingService(bookingRepo, businessRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	businessHandler := handler.NewBusinessHandler(businessService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	auth := middleware.Auth(tokens)
	ownerOnly := middleware.RBAC(domain.RoleBusinessOwner)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/profile", authHandler.Profile, auth)

	// --- Business routes ---
	business := e.Group("/api/business")
	business.POST("", businessHandler.Create, auth, ownerOnly)
	business.GET("", businessHandler.List)
	business.GET("/owner", businessHandler.GetByOwner, auth)
	business.GET("/search", businessHandler.Search)
	business.GET("/:id", businessHandler.GetByID)
	business.PUT("/:id", businessHandler.Update, auth, ownerOnly)
	business.DELETE("/:id", businessHandler.Delete, auth, ownerOnly)

	// --- Booking routes ---
	business.POST("/:id/bookings", bookingHandler.Create, auth)
	business.GET("/:id/bookings", bookingHandler.ListForBusiness, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis, deps.Logger)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
