package handlers

import (
	"net/http"

	"klodtattoo_backend/internal/services"
	"klodtattoo_backend/internal/services/dto"
	"klodtattoo_backend/internal/validator"
	"klodtattoo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService *services.BookingService
}

func NewBookingHandler(v *validator.Validator, bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    NewBaseHandler(v),
		bookingService: bookingService,
	}
}

// RegisterPublicRoutes exposes booking intake only; clients never read
// bookings back.
func (h *BookingHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/booking", h.Create)
}

func (h *BookingHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.DELETE("/bookings/:id", h.Delete)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookingService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid booking id"))
		return
	}

	booking, err := h.bookingService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid booking id"))
		return
	}

	if err := h.bookingService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
