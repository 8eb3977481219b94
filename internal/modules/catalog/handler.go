package catalog

import (
	"errors"
	"net/http"

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
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:slug", h.GetService)
	rg.GET("/quote", h.Quote)
}

func (h *Handler) ListServices(c *gin.Context) {
	list, err := h.service.ListServices(c.Request.Context(), c.Query("device"), c.Query("issue"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": list})
}

func (h *Handler) GetService(c *gin.Context) {
	svc, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) Quote(c *gin.Context) {
	device := c.Query("device")
	issue := c.Query("issue")
	if device == "" || issue == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "device and issue query parameters are required")
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), device, issue)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			response.Error(c, http.StatusNotFound, "NO_MATCH", "No service matches this device and issue")
			return
		}
		response.Error(c, http.StatusInternalServerError, "QUOTE_FAILED", "Failed to build quote")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}
