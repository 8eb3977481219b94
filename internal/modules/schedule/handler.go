package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"mobileexperts/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.ListAvailability)
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/bookings/track/:code", h.TrackBooking)
}

func (h *Handler) ListAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	duration := 0
	if s := c.Query("duration"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "duration must be a non-negative integer")
			return
		}
		duration = v
	}

	availability, err := h.service.ListAvailability(c.Request.Context(), date, duration)
	if err != nil {
		h.writeError(c, err, "Failed to list availability")
		return
	}

	response.Success(c, http.StatusOK, availability)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.RequestBooking(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": gin.H{
			"id":             b.ID,
			"booking_number": b.BookingNumber,
			"tracking_code":  b.TrackingCode,
			"date":           b.Date,
			"time":           FormatMinute(b.StartMinute),
			"status":         b.Status,
		},
	})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.CancelBooking(c.Request.Context(), id, req.Reason); err != nil {
		h.writeError(c, err, "Failed to cancel booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) TrackBooking(c *gin.Context) {
	b, err := h.service.TrackBooking(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err, "Failed to look up booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking_number": b.BookingNumber,
		"date":           b.Date,
		"time":           FormatMinute(b.StartMinute),
		"device_model":   b.DeviceModel,
		"issue_type":     b.IssueType,
		"status":         b.Status,
	})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrOutOfHours):
		response.Error(c, http.StatusUnprocessableEntity, "OUT_OF_HOURS", "Requested time is outside business hours")
	case errors.Is(err, ErrSlotFull):
		response.Error(c, http.StatusConflict, "SLOT_FULL", "Selected slot is no longer available")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking is already completed or cancelled")
	case errors.Is(err, ErrStorageUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Temporary storage failure, try again")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
