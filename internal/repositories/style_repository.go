package repositories

import (
	"errors"
	"time"

	"klodtattoo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStyleNotFound = errors.New("tattoo style not found")
	// ErrStyleConflict means the row changed or vanished mid-write but still
	// exists on re-check; the caller surfaces it as a conflict.
	ErrStyleConflict = errors.New("tattoo style was modified concurrently")
)

type StyleRepository interface {
	List(db *gorm.DB) ([]models.TattooStyle, error)
	FindByID(db *gorm.DB, id uint) (*models.TattooStyle, error)
	Create(db *gorm.DB, style *models.TattooStyle) error
	Update(db *gorm.DB, style *models.TattooStyle) error
	// Delete detaches the style from all portfolio items, then removes it.
	// Must run inside a transaction supplied by the caller.
	Delete(db *gorm.DB, id uint) error
}

type StyleRepositoryImpl struct{}

func NewStyleRepository() StyleRepository {
	return &StyleRepositoryImpl{}
}

func (r *StyleRepositoryImpl) List(db *gorm.DB) ([]models.TattooStyle, error) {
	var styles []models.TattooStyle
	err := db.Order("name ASC").Find(&styles).Error
	return styles, err
}

func (r *StyleRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.TattooStyle, error) {
	var style models.TattooStyle
	err := db.First(&style, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStyleNotFound
		}
		return nil, err
	}
	return &style, nil
}

func (r *StyleRepositoryImpl) Create(db *gorm.DB, style *models.TattooStyle) error {
	return db.Create(style).Error
}

func (r *StyleRepositoryImpl) Update(db *gorm.DB, style *models.TattooStyle) error {
	result := db.Model(&models.TattooStyle{}).Where("id = ?", style.ID).Updates(map[string]interface{}{
		"name":       style.Name,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Changed or removed between read and write; re-check existence to
		// tell the two apart.
		if _, err := r.FindByID(db, style.ID); errors.Is(err, ErrStyleNotFound) {
			return ErrStyleNotFound
		}
		return ErrStyleConflict
	}
	return nil
}

func (r *StyleRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	// Null out the reference on every item pointing at this style; the
	// items themselves survive.
	if err := db.Model(&models.PortfolioItem{}).
		Where("tattoo_style_id = ?", id).
		Update("tattoo_style_id", nil).Error; err != nil {
		return err
	}

	result := db.Delete(&models.TattooStyle{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStyleNotFound
	}
	return nil
}
