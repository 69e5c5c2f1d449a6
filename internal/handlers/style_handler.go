package handlers

import (
	"net/http"

	"klodtattoo_backend/internal/services"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/internal/validator"
	"klodtattoo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type StyleHandler struct {
	*BaseHandler
	styleService *services.StyleService
}

func NewStyleHandler(v *validator.Validator, styleService *services.StyleService) *StyleHandler {
	return &StyleHandler{
		BaseHandler:  NewBaseHandler(v),
		styleService: styleService,
	}
}

// RegisterPublicRoutes exposes the read-only catalog.
func (h *StyleHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/styles", h.List)
}

// RegisterAdminRoutes exposes catalog management; the caller wires auth.
func (h *StyleHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/styles", h.List)
	rg.GET("/styles/:id", h.Get)
	rg.POST("/styles", h.Create)
	rg.PUT("/styles/:id", h.Update)
	rg.DELETE("/styles/:id", h.Delete)
}

func (h *StyleHandler) List(c *gin.Context) {
	styles, err := h.styleService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, styles)
}

func (h *StyleHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid style id"))
		return
	}

	style, err := h.styleService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, style)
}

func (h *StyleHandler) Create(c *gin.Context) {
	var req dto.CreateStyleRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	style, err := h.styleService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, style)
}

func (h *StyleHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid style id"))
		return
	}

	var req dto.UpdateStyleRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	style, err := h.styleService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, style)
}

func (h *StyleHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid style id"))
		return
	}

	if err := h.styleService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
