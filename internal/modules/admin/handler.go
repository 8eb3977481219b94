package admin

import (
	"errors"
	"net/http"
	"strconv"

	"mobileexperts/internal/domain"
	"mobileexperts/internal/modules/schedule"
	"mobileexperts/internal/pkg/response"
	"mobileexperts/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	schedule *schedule.Service
}

func NewHandler(service *Service, scheduleService *schedule.Service) *Handler {
	return &Handler{service: service, schedule: scheduleService}
}

// RegisterPublicRoutes mounts the login endpoint outside the auth wall.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/admin")
	{
		g.GET("/bookings", h.ListBookings)
		g.GET("/bookings/:id", h.GetBooking)
		g.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		g.GET("/hours", h.WeekHours)
		g.POST("/blackouts", h.AddBlackout)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "email and password are required")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListBookings(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	list, err := h.schedule.ListBookingsForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.schedule.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status is required")
		return
	}

	switch domain.BookingStatus(req.Status) {
	case domain.BookingCompleted:
		err = h.schedule.CompleteBooking(c.Request.Context(), id)
	case domain.BookingCancelled:
		err = h.schedule.CancelBooking(c.Request.Context(), id, req.Reason)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be completed or cancelled")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, schedule.ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking is already completed or cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) WeekHours(c *gin.Context) {
	week, err := h.service.WeekHours(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load hours")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hours": week})
}

func (h *Handler) AddBlackout(c *gin.Context) {
	var req AddBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid blackout date", fields)
		return
	}

	bd, err := h.service.AddBlackout(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid blackout date")
		return
	}

	// Takes effect after the next restart; the live calendar is immutable.
	response.Success(c, http.StatusCreated, gin.H{"blackout": bd})
}
