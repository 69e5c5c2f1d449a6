package services

import (
	"klodtattoo_backend/internal/models"
	"klodtattoo_backend/internal/repositories"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// StyleService manages the tattoo style taxonomy. The admin surface is its
// only mutator; the public side just lists it for filter buttons.
type StyleService struct {
	styleRepo repositories.StyleRepository
}

func NewStyleService(styleRepo repositories.StyleRepository) *StyleService {
	return &StyleService{styleRepo: styleRepo}
}

func (s *StyleService) List(db *gorm.DB) ([]dto.StyleResponse, error) {
	styles, err := s.styleRepo.List(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "styles")
	}

	out := make([]dto.StyleResponse, 0, len(styles))
	for _, style := range styles {
		out = append(out, dto.StyleResponse{ID: style.ID, Name: style.Name})
	}
	return out, nil
}

func (s *StyleService) Get(db *gorm.DB, id uint) (*dto.StyleResponse, error) {
	style, err := s.styleRepo.FindByID(db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &dto.StyleResponse{ID: style.ID, Name: style.Name}, nil
}

func (s *StyleService) Create(db *gorm.DB, req *dto.CreateStyleRequest) (*dto.StyleResponse, error) {
	style := &models.TattooStyle{Name: req.Name}
	if err := s.styleRepo.Create(db, style); err != nil {
		return nil, apperrors.ErrDatabase(err, "styles")
	}
	return &dto.StyleResponse{ID: style.ID, Name: style.Name}, nil
}

func (s *StyleService) Update(db *gorm.DB, id uint, req *dto.UpdateStyleRequest) (*dto.StyleResponse, error) {
	style := &models.TattooStyle{Name: req.Name}
	style.ID = id

	if err := s.styleRepo.Update(db, style); err != nil {
		return nil, s.mapError(err)
	}
	return &dto.StyleResponse{ID: id, Name: req.Name}, nil
}

// Delete removes the style and detaches it from every portfolio item that
// referenced it. Both steps commit atomically; the items survive with a
// null style reference.
func (s *StyleService) Delete(db *gorm.DB, id uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return s.styleRepo.Delete(tx, id)
	})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *StyleService) mapError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrStyleNotFound):
		return apperrors.ErrNotFound(err, "styles", "Tattoo style not found")
	case apperrors.Is(err, repositories.ErrStyleConflict):
		return apperrors.ErrConflict(err, "styles", "Tattoo style was modified by another request")
	default:
		return apperrors.ErrDatabase(err, "styles")
	}
}
