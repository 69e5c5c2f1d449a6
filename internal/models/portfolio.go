package models

// PortfolioItem is a published work. ImageURL always references a stored
// asset; an item is never persisted without one. The style reference is
// nullable and styles detach (SET NULL) rather than cascade on delete.
type PortfolioItem struct {
	BaseModel
	Title         string `gorm:"not null" json:"title"`
	Description   string `json:"description"`
	ImageURL      string `gorm:"not null" json:"imageUrl"`
	TattooStyleID *uint  `gorm:"index" json:"styleId"`

	// Relations
	TattooStyle *TattooStyle `gorm:"foreignKey:TattooStyleID;constraint:OnDelete:SET NULL" json:"style,omitempty"`
}
