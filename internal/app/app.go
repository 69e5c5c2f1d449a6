package app

import (
	"fmt"

	"klodtattoo_backend/internal/assets"
	"klodtattoo_backend/internal/config"
	"klodtattoo_backend/internal/database"
	"klodtattoo_backend/internal/email"
	"klodtattoo_backend/internal/handlers"
	"klodtattoo_backend/internal/logger"
	"klodtattoo_backend/internal/middleware"
	"klodtattoo_backend/internal/repositories"
	"klodtattoo_backend/internal/routes"
	"klodtattoo_backend/internal/services"
	"klodtattoo_backend/internal/storage"
	"klodtattoo_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole service: config, logging, database, seed data and
// the HTTP server. It only returns on a fatal startup error.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env, logger.FileConfig{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// A failed migration or seed is fatal only when strict boot is on.
	// Otherwise the process comes up and serves whatever schema it has.
	if err := database.Migrate(db); err != nil {
		if cfg.Server.StrictBoot {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Error("migration failed, continuing with existing schema", "error", err)
	}
	if err := database.SeedStyles(db); err != nil {
		if cfg.Server.StrictBoot {
			return fmt.Errorf("seed styles: %w", err)
		}
		logger.Error("style seeding failed, continuing", "error", err)
	}

	r, err := SetupRouter(cfg, db)
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)
	return r.Run(addr)
}

// SetupRouter builds the full middleware/handler stack on top of an open
// database. Split out from Run so tests can drive the real router against
// an in-memory database.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	var sender email.Sender
	smtpSender, err := email.NewSMTPSender(email.Config{
		Host:           cfg.Email.SMTPHost,
		Port:           cfg.Email.SMTPPort,
		Username:       cfg.Email.SMTPUsername,
		Password:       cfg.Email.SMTPPassword,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		SendTimeoutSec: cfg.Email.SendTimeoutSec,
	})
	if err != nil {
		logger.Warn("smtp not configured, booking emails disabled", "reason", err.Error())
		sender = email.NopSender{}
	} else {
		sender = smtpSender
	}

	v := validator.New()

	styleRepo := repositories.NewStyleRepository()
	portfolioRepo := repositories.NewPortfolioRepository()
	bookingRepo := repositories.NewBookingRepository()

	images := assets.NewManager(store)

	styleService := services.NewStyleService(styleRepo)
	portfolioService := services.NewPortfolioService(portfolioRepo, images)
	bookingService := services.NewBookingService(bookingRepo, sender, cfg.Email.StudioEmail, cfg.Email.FromName)
	sitemapService := services.NewSitemapService(portfolioRepo)

	h := handlers.NewAppHandlers(v, styleService, portfolioService, bookingService, sitemapService, cfg.Server.BaseURL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.DBMiddleware(db))

	routes.Register(r, h, routes.Config{
		AdminToken: cfg.Admin.Token,
		ImageDir:   store.BasePath(),
		ImageRoute: cfg.Storage.BaseURL,
	})

	return r, nil
}
