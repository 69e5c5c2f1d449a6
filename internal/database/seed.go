package database

import (
	"klodtattoo_backend/internal/logger"
	"klodtattoo_backend/internal/models"

	"gorm.io/gorm"
)

// DefaultStyles is the studio's base taxonomy, created once on boot.
var DefaultStyles = []string{
	"Realistic",
	"Fine line",
	"Black Art",
	"Lettering",
	"Small Tattoos",
	"Cartoons",
	"Animals",
}

// SeedStyles inserts any default style that is not present yet, matching by
// name. Safe to run on every boot.
func SeedStyles(db *gorm.DB) error {
	var existing []string
	if err := db.Model(&models.TattooStyle{}).Pluck("name", &existing).Error; err != nil {
		return err
	}

	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	added := 0
	for _, name := range DefaultStyles {
		if known[name] {
			continue
		}
		if err := db.Create(&models.TattooStyle{Name: name}).Error; err != nil {
			return err
		}
		added++
	}

	if added > 0 {
		logger.Info("seeded default tattoo styles", "added", added)
	}
	return nil
}
