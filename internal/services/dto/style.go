package dto

type CreateStyleRequest struct {
	Name string `form:"name" json:"name" validate:"required,max=100"`
}

type UpdateStyleRequest struct {
	Name string `form:"name" json:"name" validate:"required,max=100"`
}

type StyleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
