package routes

import (
	"klodtattoo_backend/internal/handlers"
	"klodtattoo_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Config carries everything route registration needs beyond the handlers
// themselves.
type Config struct {
	AdminToken string
	// ImageDir is the local directory served under ImageRoute. Empty
	// disables static image serving (remote storage serves its own URLs).
	ImageDir   string
	ImageRoute string
}

// Register wires the public API, the token-guarded admin API, the crawler
// endpoints and static portfolio images onto the engine.
func Register(r *gin.Engine, h *handlers.AppHandlers, cfg Config) {
	h.Seo.RegisterRoutes(r)

	if cfg.ImageDir != "" {
		r.Static(cfg.ImageRoute, cfg.ImageDir)
	}

	api := r.Group("/api/v1")
	{
		h.Style.RegisterPublicRoutes(api)
		h.Portfolio.RegisterPublicRoutes(api)
		h.Booking.RegisterPublicRoutes(api)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(middleware.NewTokenAdminPredicate(cfg.AdminToken)))
	{
		h.Style.RegisterAdminRoutes(admin)
		h.Portfolio.RegisterAdminRoutes(admin)
		h.Booking.RegisterAdminRoutes(admin)
	}
}
