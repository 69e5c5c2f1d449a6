package repositories

import (
	"errors"

	"klodtattoo_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking request not found")

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.BookingRequest) error
	List(db *gorm.DB) ([]models.BookingRequest, error)
	FindByID(db *gorm.DB, id uint) (*models.BookingRequest, error)
	Delete(db *gorm.DB, id uint) error
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func (r *BookingRepositoryImpl) Create(db *gorm.DB, booking *models.BookingRequest) error {
	return db.Create(booking).Error
}

func (r *BookingRepositoryImpl) List(db *gorm.DB) ([]models.BookingRequest, error) {
	var bookings []models.BookingRequest
	err := db.Order("id DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.BookingRequest, error) {
	var booking models.BookingRequest
	err := db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.BookingRequest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
