package dto

import "time"

type CreateBookingRequest struct {
	ClientName      string `form:"clientName" json:"clientName" validate:"required"`
	Email           string `form:"email" json:"email" validate:"required,email"`
	BodyPart        string `form:"bodyPart" json:"bodyPart" validate:"required"`
	IdeaDescription string `form:"ideaDescription" json:"ideaDescription" validate:"required"`
	PreferredDate   string `form:"preferredDate" json:"preferredDate" validate:"required,datetime=2006-01-02"`
}

type BookingResponse struct {
	ID              uint      `json:"id"`
	ClientName      string    `json:"clientName"`
	Email           string    `json:"email"`
	BodyPart        string    `json:"bodyPart"`
	IdeaDescription string    `json:"ideaDescription"`
	PreferredDate   time.Time `json:"preferredDate"`
	CreatedAt       time.Time `json:"createdAt"`
}
