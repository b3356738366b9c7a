package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/brightdays/holiday-club-backend/internal/api"
	"github.com/brightdays/holiday-club-backend/internal/auth"
	"github.com/brightdays/holiday-club-backend/internal/booking"
	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
	"github.com/brightdays/holiday-club-backend/internal/checkout"
	"github.com/brightdays/holiday-club-backend/internal/child"
	"github.com/brightdays/holiday-club-backend/internal/club"
	"github.com/brightdays/holiday-club-backend/internal/clubday"
	"github.com/brightdays/holiday-club-backend/internal/clubimage"
	"github.com/brightdays/holiday-club-backend/internal/pkg/storage"
	"github.com/brightdays/holiday-club-backend/internal/promocode"
	"github.com/brightdays/holiday-club-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       *zap.Logger
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	Currency           string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	StorageBackend string
	StoragePath    string
	CloudinaryURL  string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	payments := checkout.NewStripeProvider(cfg.Currency, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL, cfg.Logger)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Club Module
	clubRepo := club.NewPgxRepository(cfg.DBPool)
	clubService := club.NewService(clubRepo)

	// ClubDay Module
	clubdayRepo := clubday.NewPgxRepository(cfg.DBPool)
	clubdayService := clubday.NewService(clubdayRepo, clubService)

	// BookingOption Module
	optionRepo := bookingoption.NewPgxRepository(cfg.DBPool)
	optionService := bookingoption.NewService(optionRepo, clubService)

	// Child Module
	childRepo := child.NewPgxRepository(cfg.DBPool)
	childService := child.NewService(childRepo)

	// PromoCode Module
	promoRepo := promocode.NewPgxRepository(cfg.DBPool)
	promoService := promocode.NewService(promoRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, clubService, clubdayService,
		optionService, childService, promoService, userService, payments, cfg.Logger)

	// ClubImage Module
	clubimageRepo := clubimage.NewPgxRepository(cfg.DBPool)
	clubimageService := clubimage.NewService(clubimageRepo, clubService, store)

	// API Router Config
	routerParams := api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		UserService:      userService,
		ClubService:      clubService,
		ClubDayService:   clubdayService,
		OptionService:    optionService,
		ChildService:     childService,
		PromoService:     promoService,
		BookingService:   bookingService,
		ClubImageService: clubimageService,
		JWTManager:       jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	if cfg.StorageBackend == "cloudinary" {
		return storage.NewCloudinaryStorage(cfg.CloudinaryURL)
	}
	return storage.NewLocalStorage(cfg.StoragePath)
}
