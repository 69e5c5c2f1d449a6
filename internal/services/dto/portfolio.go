package dto

import "time"

// CreatePortfolioRequest arrives as multipart form data; the image file
// travels alongside and is validated separately (present + actually an image).
type CreatePortfolioRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description"`
	StyleID     *uint  `form:"styleId" json:"styleId"`
}

// UpdatePortfolioRequest carries only the editable fields. ImageURL and
// CreatedAt are derived server-side; a client cannot rewrite them.
type UpdatePortfolioRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description"`
	StyleID     *uint  `form:"styleId" json:"styleId"`
}

type PortfolioItemResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	StyleID     *uint     `json:"styleId"`
	StyleName   string    `json:"styleName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
