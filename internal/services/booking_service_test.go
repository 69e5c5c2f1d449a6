package services

import (
	"context"
	"errors"
	"testing"

	"klodtattoo_backend/internal/email"
	"klodtattoo_backend/internal/models"
	"klodtattoo_backend/internal/repositories"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	messages []*email.Message
	err      error
}

func (f *fakeSender) Send(msg *email.Message) error {
	f.messages = append(f.messages, msg)
	return f.err
}

func maraRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		ClientName:      "Mara",
		Email:           "mara@example.com",
		BodyPart:        "forearm",
		IdeaDescription: "fine line fern",
		PreferredDate:   "2026-10-12",
	}
}

func TestBookingCreateSendsBothEmails(t *testing.T) {
	db := newTestDB(t)
	sender := &fakeSender{}
	svc := NewBookingService(repositories.NewBookingRepository(), sender, "studio@example.com", "KlodTattoo")

	booking, err := svc.Create(context.Background(), db, maraRequest())
	require.NoError(t, err)
	assert.NotZero(t, booking.ID)
	assert.Equal(t, "2026-10-12", booking.PreferredDate.Format("2006-01-02"))

	require.Len(t, sender.messages, 2)

	confirmation := sender.messages[0]
	assert.Equal(t, "mara@example.com", confirmation.To)
	assert.Contains(t, confirmation.HTMLBody, "Mara")
	assert.Contains(t, confirmation.HTMLBody, "2026-10-12")

	notification := sender.messages[1]
	assert.Equal(t, "studio@example.com", notification.To)
	assert.Equal(t, "mara@example.com", notification.ReplyTo)
	assert.Contains(t, notification.HTMLBody, "forearm")
}

func TestBookingCreateSurvivesSendFailure(t *testing.T) {
	db := newTestDB(t)
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := NewBookingService(repositories.NewBookingRepository(), sender, "studio@example.com", "KlodTattoo")

	booking, err := svc.Create(context.Background(), db, maraRequest())
	require.NoError(t, err, "send failures must not fail the booking")

	// Both sends were still attempted.
	assert.Len(t, sender.messages, 2)

	// And the row is durably there.
	var count int64
	require.NoError(t, db.Model(&models.BookingRequest{}).Where("id = ?", booking.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBookingCreateRejectsBadDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(repositories.NewBookingRepository(), &fakeSender{}, "studio@example.com", "KlodTattoo")

	req := maraRequest()
	req.PreferredDate = "next tuesday"

	_, err := svc.Create(context.Background(), db, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestBookingListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	sender := &fakeSender{}
	svc := NewBookingService(repositories.NewBookingRepository(), sender, "studio@example.com", "KlodTattoo")
	ctx := context.Background()

	first, err := svc.Create(ctx, db, maraRequest())
	require.NoError(t, err)

	second := maraRequest()
	second.ClientName = "Yuri"
	latest, err := svc.Create(ctx, db, second)
	require.NoError(t, err)

	bookings, err := svc.List(db)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, latest.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)

	require.NoError(t, svc.Delete(db, first.ID))
	_, err = svc.Get(db, first.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
