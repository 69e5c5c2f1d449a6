package handlers

import (
	"errors"
	"io"
	"net/http"

	"klodtattoo_backend/internal/services"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/internal/validator"
	"klodtattoo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService *services.PortfolioService
}

func NewPortfolioHandler(v *validator.Validator, portfolioService *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      NewBaseHandler(v),
		portfolioService: portfolioService,
	}
}

// RegisterPublicRoutes exposes the gallery: full list, style-filtered list
// via ?style=, and item details.
func (h *PortfolioHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/portfolio", h.List)
	rg.GET("/portfolio/:id", h.Get)
}

func (h *PortfolioHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/portfolio", h.List)
	rg.GET("/portfolio/:id", h.Get)
	rg.POST("/portfolio", h.Create)
	rg.PUT("/portfolio/:id", h.Update)
	rg.DELETE("/portfolio/:id", h.Delete)
}

func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.portfolioService.List(h.GetDB(c), c.Query("style"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid portfolio item id"))
		return
	}

	item, err := h.portfolioService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create accepts multipart form data: the text fields plus a required
// "image" file part. Field errors and a missing file are reported in one
// validation response instead of one at a time.
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.CreatePortfolioRequest
	if err := c.ShouldBind(&req); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid form data"))
		return
	}

	fieldErrs := map[string]string{}
	if err := h.ValidateStruct(&req); err != nil {
		var vErr *validator.ValidationError
		if !errors.As(err, &vErr) {
			h.HandleServiceError(c, apperrors.InternalError(err))
			return
		}
		for field, msg := range vErr.Errors {
			fieldErrs[field] = msg
		}
	}

	file, err := c.FormFile("image")
	if err != nil {
		fieldErrs["image"] = "This field is required"
	}
	if len(fieldErrs) > 0 {
		h.HandleServiceError(c, apperrors.ValidationError(fieldErrs))
		return
	}

	src, err := file.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Unable to read uploaded file"))
		return
	}
	defer src.Close()

	item, err := h.portfolioService.Create(c.Request.Context(), h.GetDB(c), &req, src, file.Filename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update edits the text fields; the "image" file part is optional and, when
// present, replaces the stored image.
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid portfolio item id"))
		return
	}

	var req dto.UpdatePortfolioRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	var (
		image     io.Reader
		imageName string
	)
	// Absent file part (or a non-multipart body) means "keep the image".
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			h.HandleServiceError(c, apperrors.NewBadRequestError("Unable to read uploaded file"))
			return
		}
		defer src.Close()
		image = src
		imageName = file.Filename
	}

	item, err := h.portfolioService.Update(c.Request.Context(), h.GetDB(c), id, &req, image, imageName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid portfolio item id"))
		return
	}

	if err := h.portfolioService.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
