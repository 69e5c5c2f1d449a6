package services

import (
	"context"
	"fmt"
	"time"

	"klodtattoo_backend/internal/email"
	"klodtattoo_backend/internal/logger"
	"klodtattoo_backend/internal/models"
	"klodtattoo_backend/internal/repositories"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const bookingDateLayout = "2006-01-02"

// BookingService persists booking requests and fires the two notification
// emails. Persistence is the only success criterion the submitter sees;
// email failures are logged and swallowed.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	sender      email.Sender
	studioEmail string
	studioName  string
}

func NewBookingService(bookingRepo repositories.BookingRepository, sender email.Sender, studioEmail, studioName string) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		sender:      sender,
		studioEmail: studioEmail,
		studioName:  studioName,
	}
}

// Create persists the request, then attempts both notifications. The record
// is durably committed before the first send; nothing that happens during
// sending can undo it or fail the call.
func (s *BookingService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	preferredDate, err := time.Parse(bookingDateLayout, req.PreferredDate)
	if err != nil {
		// The datetime validation tag catches this first; kept as a guard
		// for callers that skip handler-level validation.
		return nil, apperrors.ValidationError(map[string]string{
			"preferredDate": "Must be a date in 2006-01-02 format",
		})
	}

	booking := &models.BookingRequest{
		ClientName:      req.ClientName,
		Email:           req.Email,
		BodyPart:        req.BodyPart,
		IdeaDescription: req.IdeaDescription,
		PreferredDate:   preferredDate,
	}

	if err := s.bookingRepo.Create(db, booking); err != nil {
		return nil, apperrors.ErrDatabase(err, "booking")
	}

	s.notify(ctx, booking)

	return toBookingResponse(booking), nil
}

// notify sends the client confirmation and the studio notification. Each
// send is attempted independently; errors are logged, never propagated.
func (s *BookingService) notify(ctx context.Context, booking *models.BookingRequest) {
	date := booking.PreferredDate.Format(bookingDateLayout)

	clientBody := fmt.Sprintf(
		"Hi %s,<br/><br/>"+
			"We received your tattoo booking request.<br/>"+
			"Preferred date: %s<br/>"+
			"Body part: %s<br/>"+
			"Idea: %s<br/><br/>"+
			"We will contact you soon to settle the details.<br/><br/>"+
			"Thanks,<br/>The %s team",
		booking.ClientName, date, booking.BodyPart, booking.IdeaDescription, s.studioName,
	)

	if err := s.sender.Send(&email.Message{
		To:       booking.Email,
		Subject:  fmt.Sprintf("Your %s booking request was received", s.studioName),
		HTMLBody: clientBody,
	}); err != nil {
		logger.CtxWithError(ctx, "failed to send booking confirmation to client", err,
			"booking_id", booking.ID, "to", booking.Email)
	}

	studioBody := fmt.Sprintf(
		"A new booking request was submitted:<br/><br/>"+
			"Client name: %s<br/>"+
			"Client email: %s<br/>"+
			"Preferred date: %s<br/>"+
			"Body part: %s<br/>"+
			"Idea: %s<br/><br/>"+
			"Open the admin area to handle the request.",
		booking.ClientName, booking.Email, date, booking.BodyPart, booking.IdeaDescription,
	)

	// Reply-To points at the client so the studio can answer directly.
	if err := s.sender.Send(&email.Message{
		To:       s.studioEmail,
		Subject:  "NEW BOOKING REQUEST",
		HTMLBody: studioBody,
		ReplyTo:  booking.Email,
	}); err != nil {
		logger.CtxWithError(ctx, "failed to send booking notification to studio", err,
			"booking_id", booking.ID, "to", s.studioEmail)
	}
}

func (s *BookingService) List(db *gorm.DB) ([]dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "booking")
	}

	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *toBookingResponse(&bookings[i]))
	}
	return out, nil
}

func (s *BookingService) Get(db *gorm.DB, id uint) (*dto.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return toBookingResponse(booking), nil
}

func (s *BookingService) Delete(db *gorm.DB, id uint) error {
	if err := s.bookingRepo.Delete(db, id); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *BookingService) mapError(err error) error {
	if apperrors.Is(err, repositories.ErrBookingNotFound) {
		return apperrors.ErrNotFound(err, "booking", "Booking request not found")
	}
	return apperrors.ErrDatabase(err, "booking")
}

func toBookingResponse(booking *models.BookingRequest) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:              booking.ID,
		ClientName:      booking.ClientName,
		Email:           booking.Email,
		BodyPart:        booking.BodyPart,
		IdeaDescription: booking.IdeaDescription,
		PreferredDate:   booking.PreferredDate,
		CreatedAt:       booking.CreatedAt,
	}
}
