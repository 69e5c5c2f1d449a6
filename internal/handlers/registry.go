package handlers

import (
	"klodtattoo_backend/internal/services"
	"klodtattoo_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler so route wiring takes one value.
type AppHandlers struct {
	Style     *StyleHandler
	Portfolio *PortfolioHandler
	Booking   *BookingHandler
	Seo       *SeoHandler
}

func NewAppHandlers(
	v *validator.Validator,
	styleService *services.StyleService,
	portfolioService *services.PortfolioService,
	bookingService *services.BookingService,
	sitemapService *services.SitemapService,
	baseURL string,
) *AppHandlers {
	return &AppHandlers{
		Style:     NewStyleHandler(v, styleService),
		Portfolio: NewPortfolioHandler(v, portfolioService),
		Booking:   NewBookingHandler(v, bookingService),
		Seo:       NewSeoHandler(v, sitemapService, baseURL),
	}
}
