package chat

import (
	"net/http"
	"time"

	"mobileexperts/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	service  *Service
	upgrader websocket.Upgrader
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The widget is served from the marketing site, not this host.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.Message)
	rg.GET("/chat/ws", h.Stream)
}

type messageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) Message(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "message is required")
		return
	}

	reply := h.service.Respond(req.Message)
	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}

// Stream upgrades to a websocket and answers each incoming message in
// turn. History is scoped to the connection and dropped when it closes.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	history := make([]Exchange, 0, 16)

	for {
		var req messageRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		reply := h.service.Respond(req.Message)
		history = append(history, Exchange{
			User: req.Message,
			Bot:  reply.Text,
			At:   time.Now().Unix(),
		})

		if err := conn.WriteJSON(gin.H{"reply": reply, "turns": len(history)}); err != nil {
			return
		}
	}
}
