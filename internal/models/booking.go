package models

import "time"

// BookingRequest is a prospective-client inquiry. Created by the public
// form only; admins can read and delete, nobody updates. Presence in the
// table is the only state it has.
type BookingRequest struct {
	BaseModel
	ClientName      string    `gorm:"not null" json:"clientName"`
	Email           string    `gorm:"not null" json:"email"`
	BodyPart        string    `gorm:"not null" json:"bodyPart"`
	IdeaDescription string    `gorm:"not null" json:"ideaDescription"`
	PreferredDate   time.Time `json:"preferredDate"`
}
