package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/brightdays/holiday-club-backend/internal/auth"
	"github.com/brightdays/holiday-club-backend/internal/booking"
	bookingHttp "github.com/brightdays/holiday-club-backend/internal/booking/http"
	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
	optionHttp "github.com/brightdays/holiday-club-backend/internal/bookingoption/http"
	"github.com/brightdays/holiday-club-backend/internal/child"
	childHttp "github.com/brightdays/holiday-club-backend/internal/child/http"
	"github.com/brightdays/holiday-club-backend/internal/club"
	clubHttp "github.com/brightdays/holiday-club-backend/internal/club/http"
	"github.com/brightdays/holiday-club-backend/internal/clubday"
	clubdayHttp "github.com/brightdays/holiday-club-backend/internal/clubday/http"
	"github.com/brightdays/holiday-club-backend/internal/clubimage"
	clubimageHttp "github.com/brightdays/holiday-club-backend/internal/clubimage/http"
	"github.com/brightdays/holiday-club-backend/internal/promocode"
	promoHttp "github.com/brightdays/holiday-club-backend/internal/promocode/http"
	"github.com/brightdays/holiday-club-backend/internal/user"
	userHttp "github.com/brightdays/holiday-club-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService      user.Service
	ClubService      club.Service
	ClubDayService   clubday.Service
	OptionService    bookingoption.Service
	ChildService     child.Service
	PromoService     promocode.Service
	BookingService   booking.Service
	ClubImageService clubimage.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// sysAdminMiddleware: Further checks if the authenticated user has System Admin privileges.
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	clubHandler := clubHttp.NewHandler(cfg.ClubService)
	clubdayHandler := clubdayHttp.NewHandler(cfg.ClubDayService)
	optionHandler := optionHttp.NewHandler(cfg.OptionService)
	childHandler := childHttp.NewHandler(cfg.ChildService)
	promoHandler := promoHttp.NewHandler(cfg.PromoService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	clubimageHandler := clubimageHttp.NewHandler(cfg.ClubImageService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		clubHttp.RegisterRoutes(v1, clubHandler, authMiddleware, sysAdminMiddleware)
		clubdayHttp.RegisterRoutes(v1, clubdayHandler, authMiddleware, sysAdminMiddleware)
		optionHttp.RegisterRoutes(v1, optionHandler, authMiddleware, sysAdminMiddleware)
		childHttp.RegisterRoutes(v1, childHandler, authMiddleware)
		promoHttp.RegisterRoutes(v1, promoHandler, authMiddleware, sysAdminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		clubimageHttp.RegisterRoutes(v1, clubimageHandler, authMiddleware, sysAdminMiddleware)
	}

	return r
}
