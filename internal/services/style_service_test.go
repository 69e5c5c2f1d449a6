package services

import (
	"testing"

	"klodtattoo_backend/internal/database"
	"klodtattoo_backend/internal/models"
	"klodtattoo_backend/internal/repositories"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleServiceCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewStyleService(repositories.NewStyleRepository())

	created, err := svc.Create(db, &dto.CreateStyleRequest{Name: "Neo traditional"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Neo traditional", got.Name)

	updated, err := svc.Update(db, created.ID, &dto.UpdateStyleRequest{Name: "Neotrad"})
	require.NoError(t, err)
	assert.Equal(t, "Neotrad", updated.Name)

	require.NoError(t, svc.Delete(db, created.ID))

	_, err = svc.Get(db, created.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestStyleListSeededAndSorted(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.SeedStyles(db))
	// Seeding twice must not duplicate anything.
	require.NoError(t, database.SeedStyles(db))

	svc := NewStyleService(repositories.NewStyleRepository())
	styles, err := svc.List(db)
	require.NoError(t, err)
	require.Len(t, styles, len(database.DefaultStyles))

	for i := 1; i < len(styles); i++ {
		assert.LessOrEqual(t, styles[i-1].Name, styles[i].Name)
	}
}

func TestStyleDeleteDetachesPortfolioItems(t *testing.T) {
	db := newTestDB(t)
	styleSvc := NewStyleService(repositories.NewStyleRepository())

	style, err := styleSvc.Create(db, &dto.CreateStyleRequest{Name: "Fine line"})
	require.NoError(t, err)

	item := &models.PortfolioItem{
		Title:         "Piece A",
		ImageURL:      "/images/portfolio/a.png",
		TattooStyleID: &style.ID,
	}
	require.NoError(t, db.Create(item).Error)

	require.NoError(t, styleSvc.Delete(db, style.ID))

	portfolioSvc := NewPortfolioService(repositories.NewPortfolioRepository(), nil)
	got, err := portfolioSvc.Get(db, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StyleID)
	assert.Empty(t, got.StyleName)
}

func TestStyleUpdateMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewStyleService(repositories.NewStyleRepository())

	_, err := svc.Update(db, 9999, &dto.UpdateStyleRequest{Name: "Ghost"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
