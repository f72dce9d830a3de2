package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "bantconfirm/docs" // swagger docs

	"bantconfirm/internal/auth"
	"bantconfirm/internal/cache"
	"bantconfirm/internal/config"
	"bantconfirm/internal/db"
	"bantconfirm/internal/handler"
	"bantconfirm/internal/model"
	"bantconfirm/internal/qualifier"
	"bantconfirm/internal/repository"
	"bantconfirm/internal/router"
	"bantconfirm/internal/service"
)

// @title BANTConfirm API
// @version 1.0
// @description B2B marketplace API with AI-assisted BANT lead qualification, enquiry assignment, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.UserProfile{},
		&model.Product{},
		&model.Category{},
		&model.Enquiry{},
		&model.SiteSettings{},
		&model.TrustedVendor{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	enquiryRepo := repository.NewEnquiryRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)
	trustedRepo := repository.NewTrustedVendorRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// The qualifier is fixed at startup; a misconfigured provider is a
	// deployment error, never a silent fallback.
	leadQualifier, err := qualifier.New(cfg)
	if err != nil {
		log.Fatalf("qualifier init: %v", err)
	}
	log.Printf("lead qualifier provider: %s", leadQualifier.Provider())

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	enquiryService := service.NewEnquiryService(enquiryRepo, userRepo, leadQualifier)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	settingsService := service.NewSettingsService(settingsRepo, trustedRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService, cfg.StrictEnquiryWrites)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		userHandler,
		enquiryHandler,
		catalogHandler,
		settingsHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
