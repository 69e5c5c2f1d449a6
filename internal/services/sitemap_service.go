package services

import (
	"encoding/xml"
	"fmt"

	"klodtattoo_backend/internal/repositories"
	"klodtattoo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SitemapService derives robots.txt and sitemap.xml from the portfolio
// store. Read-only; the store is authoritative.
type SitemapService struct {
	portfolioRepo repositories.PortfolioRepository
}

func NewSitemapService(portfolioRepo repositories.PortfolioRepository) *SitemapService {
	return &SitemapService{portfolioRepo: portfolioRepo}
}

// staticRoutes are the site's fixed pages with their crawl priorities.
var staticRoutes = []struct {
	path     string
	priority string
}{
	{"", "1.0"},
	{"/portfolio", "0.9"},
	{"/services", "0.9"},
	{"/info", "0.8"},
	{"/contacts", "0.8"},
	{"/booking/create", "0.9"},
}

func (s *SitemapService) Robots(baseURL string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", baseURL)
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders the urlset: static routes plus one entry per portfolio
// item, last-modified at the item's creation time.
func (s *SitemapService) Sitemap(db *gorm.DB, baseURL string) ([]byte, error) {
	items, err := s.portfolioRepo.List(db, "")
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "sitemap")
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      baseURL + route.path,
			Priority: route.priority,
		})
	}
	for _, item := range items {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      fmt.Sprintf("%s/portfolio/%d", baseURL, item.ID),
			LastMod:  item.CreatedAt.Format("2006-01-02"),
			Priority: "0.7",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return append([]byte(xml.Header), body...), nil
}
