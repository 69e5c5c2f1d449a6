package services

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"klodtattoo_backend/internal/models"
	"klodtattoo_backend/internal/repositories"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioCreateAndFilterByStyle(t *testing.T) {
	db := newTestDB(t)
	images, dir := newTestImages(t)
	svc := NewPortfolioService(repositories.NewPortfolioRepository(), images)

	fineLine := &models.TattooStyle{Name: "Fine line"}
	realistic := &models.TattooStyle{Name: "Realistic"}
	require.NoError(t, db.Create(fineLine).Error)
	require.NoError(t, db.Create(realistic).Error)

	ctx := context.Background()

	a, err := svc.Create(ctx, db, &dto.CreatePortfolioRequest{
		Title:   "Piece A",
		StyleID: &fineLine.ID,
	}, pngUpload(), "a.png")
	require.NoError(t, err)

	_, err = svc.Create(ctx, db, &dto.CreatePortfolioRequest{
		Title:   "Piece B",
		StyleID: &realistic.ID,
	}, pngUpload(), "b.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.ImageURL, "/images/portfolio/"))
	assert.True(t, strings.HasSuffix(a.ImageURL, ".png"))
	_, err = os.Stat(imagePath(dir, a.ImageURL))
	require.NoError(t, err)

	all, err := svc.List(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.List(db, "Fine line")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Piece A", filtered[0].Title)
	assert.Equal(t, "Fine line", filtered[0].StyleName)

	none, err := svc.List(db, "Nonexistent")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPortfolioCreateRejectsNonImage(t *testing.T) {
	db := newTestDB(t)
	images, dir := newTestImages(t)
	svc := NewPortfolioService(repositories.NewPortfolioRepository(), images)

	_, err := svc.Create(context.Background(), db, &dto.CreatePortfolioRequest{Title: "Bad"},
		strings.NewReader("this is plain text, not an image"), "notes.txt")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// Nothing was committed or left on disk.
	var count int64
	require.NoError(t, db.Model(&models.PortfolioItem{}).Count(&count).Error)
	assert.Zero(t, count)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPortfolioUpdateReplacesImage(t *testing.T) {
	db := newTestDB(t)
	images, dir := newTestImages(t)
	svc := NewPortfolioService(repositories.NewPortfolioRepository(), images)
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreatePortfolioRequest{Title: "Original"}, pngUpload(), "old.png")
	require.NoError(t, err)
	oldPath := imagePath(dir, created.ImageURL)

	updated, err := svc.Update(ctx, db, created.ID, &dto.UpdatePortfolioRequest{Title: "Reworked"}, pngUpload(), "new.png")
	require.NoError(t, err)
	assert.Equal(t, "Reworked", updated.Title)
	assert.NotEqual(t, created.ImageURL, updated.ImageURL)

	_, err = os.Stat(imagePath(dir, updated.ImageURL))
	require.NoError(t, err)
	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err), "superseded file should be deleted")
}

func TestPortfolioUpdateWithoutImageKeepsFile(t *testing.T) {
	db := newTestDB(t)
	images, dir := newTestImages(t)
	svc := NewPortfolioService(repositories.NewPortfolioRepository(), images)
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreatePortfolioRequest{Title: "Original"}, pngUpload(), "keep.png")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, db, created.ID, &dto.UpdatePortfolioRequest{Title: "Renamed"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

	_, err = os.Stat(imagePath(dir, created.ImageURL))
	require.NoError(t, err)
}

func TestPortfolioDeleteRemovesFile(t *testing.T) {
	db := newTestDB(t)
	images, dir := newTestImages(t)
	svc := NewPortfolioService(repositories.NewPortfolioRepository(), images)
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreatePortfolioRequest{Title: "Doomed"}, pngUpload(), "gone.png")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, db, created.ID))

	_, err = svc.Get(db, created.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	_, err = os.Stat(imagePath(dir, created.ImageURL))
	assert.True(t, os.IsNotExist(err))

	// Deleting again reports not found, not an asset error.
	err = svc.Delete(ctx, db, created.ID)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
