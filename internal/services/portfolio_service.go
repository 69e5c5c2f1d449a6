package services

import (
	"context"
	"io"

	"klodtattoo_backend/internal/assets"
	"klodtattoo_backend/internal/logger"
	"klodtattoo_backend/internal/models"
	"klodtattoo_backend/internal/repositories"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PortfolioService owns portfolio records and their image lifecycle.
// Ordering rule everywhere: an asset write precedes the store commit that
// references it, and superseded-file cleanup happens only after the commit,
// best-effort.
type PortfolioService struct {
	portfolioRepo repositories.PortfolioRepository
	images        *assets.Manager
}

func NewPortfolioService(portfolioRepo repositories.PortfolioRepository, images *assets.Manager) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		images:        images,
	}
}

func (s *PortfolioService) List(db *gorm.DB, styleName string) ([]dto.PortfolioItemResponse, error) {
	items, err := s.portfolioRepo.List(db, styleName)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "portfolio")
	}

	out := make([]dto.PortfolioItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toPortfolioResponse(&items[i]))
	}
	return out, nil
}

func (s *PortfolioService) Get(db *gorm.DB, id uint) (*dto.PortfolioItemResponse, error) {
	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	resp := toPortfolioResponse(item)
	return &resp, nil
}

// Create stores the image first and commits the record only once the file is
// safely on disk. If the commit then fails, the orphaned file is removed
// best-effort so storage does not accumulate unreferenced assets.
func (s *PortfolioService) Create(ctx context.Context, db *gorm.DB, req *dto.CreatePortfolioRequest, image io.Reader, imageName string) (*dto.PortfolioItemResponse, error) {
	imageURL, err := s.images.Store(ctx, image, imageName)
	if err != nil {
		if apperrors.Is(err, assets.ErrNotImage) {
			return nil, apperrors.ValidationError(map[string]string{
				"image": "Uploaded file must be an image",
			})
		}
		return nil, apperrors.ErrAssetWrite(err)
	}

	item := &models.PortfolioItem{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      imageURL,
		TattooStyleID: req.StyleID,
	}

	if err := s.portfolioRepo.Create(db, item); err != nil {
		if rmErr := s.images.Remove(ctx, imageURL); rmErr != nil {
			logger.CtxWarn(ctx, "orphaned asset left after failed create", "asset", imageURL)
		}
		return nil, apperrors.ErrDatabase(err, "portfolio")
	}

	resp := toPortfolioResponse(item)
	return &resp, nil
}

// Update edits title/description/style and optionally replaces the image.
// ImageURL and CreatedAt come from the stored record, never from the client.
// With a replacement image: new file stored, record committed to reference
// it, then the old file deleted; a failed old-file delete never rolls the
// update back.
func (s *PortfolioService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdatePortfolioRequest, image io.Reader, imageName string) (*dto.PortfolioItemResponse, error) {
	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	oldImageURL := item.ImageURL
	replaced := false

	if image != nil {
		newURL, err := s.images.Store(ctx, image, imageName)
		if err != nil {
			if apperrors.Is(err, assets.ErrNotImage) {
				return nil, apperrors.ValidationError(map[string]string{
					"image": "Uploaded file must be an image",
				})
			}
			return nil, apperrors.ErrAssetWrite(err)
		}
		item.ImageURL = newURL
		replaced = true
	}

	item.Title = req.Title
	item.Description = req.Description
	item.TattooStyleID = req.StyleID

	if err := s.portfolioRepo.Update(db, item); err != nil {
		if replaced {
			// The record still points at the old file; drop the new one.
			s.images.Remove(ctx, item.ImageURL)
		}
		return nil, s.mapError(err)
	}

	if replaced && oldImageURL != "" {
		s.images.Remove(ctx, oldImageURL)
	}

	item.TattooStyle = nil // stale after a style change; responses resolve lazily
	resp := toPortfolioResponse(item)
	return &resp, nil
}

// Delete removes the record and then its image file, best-effort and
// idempotent on the file side.
func (s *PortfolioService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		return s.mapError(err)
	}

	if err := s.portfolioRepo.Delete(db, id); err != nil {
		return s.mapError(err)
	}

	if item.ImageURL != "" {
		s.images.Remove(ctx, item.ImageURL)
	}
	return nil
}

func (s *PortfolioService) mapError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrPortfolioItemNotFound):
		return apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found")
	case apperrors.Is(err, repositories.ErrPortfolioItemConflict):
		return apperrors.ErrConflict(err, "portfolio", "Portfolio item was modified by another request")
	default:
		return apperrors.ErrDatabase(err, "portfolio")
	}
}

func toPortfolioResponse(item *models.PortfolioItem) dto.PortfolioItemResponse {
	resp := dto.PortfolioItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		StyleID:     item.TattooStyleID,
		CreatedAt:   item.CreatedAt,
	}
	if item.TattooStyle != nil {
		resp.StyleName = item.TattooStyle.Name
	}
	return resp
}
