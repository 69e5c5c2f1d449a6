package repositories

import (
	"errors"
	"time"

	"klodtattoo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	ErrPortfolioItemConflict = errors.New("portfolio item was modified concurrently")
)

type PortfolioRepository interface {
	// List returns items newest-first. A non-empty styleName is an
	// exact-match join against the style catalog; items without a style
	// never match it.
	List(db *gorm.DB, styleName string) ([]models.PortfolioItem, error)
	FindByID(db *gorm.DB, id uint) (*models.PortfolioItem, error)
	Create(db *gorm.DB, item *models.PortfolioItem) error
	Update(db *gorm.DB, item *models.PortfolioItem) error
	Delete(db *gorm.DB, id uint) error
}

type PortfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &PortfolioRepositoryImpl{}
}

func (r *PortfolioRepositoryImpl) List(db *gorm.DB, styleName string) ([]models.PortfolioItem, error) {
	query := db.Preload("TattooStyle").Order("portfolio_items.created_at DESC")

	if styleName != "" {
		query = query.
			Joins("JOIN tattoo_styles ON tattoo_styles.id = portfolio_items.tattoo_style_id").
			Where("tattoo_styles.name = ?", styleName)
	}

	var items []models.PortfolioItem
	err := query.Find(&items).Error
	return items, err
}

func (r *PortfolioRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.Preload("TattooStyle").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepositoryImpl) Create(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Create(item).Error
}

func (r *PortfolioRepositoryImpl) Update(db *gorm.DB, item *models.PortfolioItem) error {
	result := db.Model(&models.PortfolioItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"title":           item.Title,
		"description":     item.Description,
		"image_url":       item.ImageURL,
		"tattoo_style_id": item.TattooStyleID,
		"updated_at":      time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(db, item.ID); errors.Is(err, ErrPortfolioItemNotFound) {
			return ErrPortfolioItemNotFound
		}
		return ErrPortfolioItemConflict
	}
	return nil
}

func (r *PortfolioRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.PortfolioItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}
