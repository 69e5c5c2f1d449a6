package models

// TattooStyle is a named category portfolio entries point at. Names are
// intended to be unique but the schema does not enforce it.
type TattooStyle struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`

	// Relations
	PortfolioItems []PortfolioItem `gorm:"foreignKey:TattooStyleID" json:"-"`
}
