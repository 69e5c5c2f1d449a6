package handlers

import (
	"net/http"

	"klodtattoo_backend/internal/services"
	"klodtattoo_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// SeoHandler serves the crawler surface at the site root. The base URL
// comes from configuration when set and falls back to the request host.
type SeoHandler struct {
	*BaseHandler
	sitemapService *services.SitemapService
	baseURL        string
}

func NewSeoHandler(v *validator.Validator, sitemapService *services.SitemapService, baseURL string) *SeoHandler {
	return &SeoHandler{
		BaseHandler:    NewBaseHandler(v),
		sitemapService: sitemapService,
		baseURL:        baseURL,
	}
}

func (h *SeoHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/robots.txt", h.Robots)
	r.GET("/sitemap.xml", h.Sitemap)
}

func (h *SeoHandler) Robots(c *gin.Context) {
	body := h.sitemapService.Robots(BaseURL(c, h.baseURL))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func (h *SeoHandler) Sitemap(c *gin.Context) {
	body, err := h.sitemapService.Sitemap(h.GetDB(c), BaseURL(c, h.baseURL))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
