package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"clipstream/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	subs := protected.Group("/subscriptions")
	{
		subs.POST("/channel/:channelId", h.Toggle)
		subs.GET("/channel/:channelId/subscribers", h.Subscribers)
		subs.GET("/channels", h.SubscribedChannels)
	}
}

func (h *Handler) Toggle(c *gin.Context) {
	userID := c.GetInt64("user_id")
	channelID, err := strconv.ParseInt(c.Param("channelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid channel ID")
		return
	}

	result, err := h.service.Toggle(c.Request.Context(), userID, channelID)
	if err != nil {
		h.writeError(c, err, "Failed to toggle subscription")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Subscribers(c *gin.Context) {
	channelID, err := strconv.ParseInt(c.Param("channelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid channel ID")
		return
	}

	subscribers, total, err := h.service.GetSubscribers(c.Request.Context(), channelID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch subscribers")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"subscribers": subscribers,
		"total":       total,
	})
}

func (h *Handler) SubscribedChannels(c *gin.Context) {
	userID := c.GetInt64("user_id")

	channels, err := h.service.GetSubscribedChannels(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to fetch channels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"channels": channels})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrChannelNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Channel not found")
	case errors.Is(err, ErrSelfSubscribe):
		response.Error(c, http.StatusBadRequest, "SELF_SUBSCRIBE", "You cannot subscribe to your own channel")
	default:
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", fallback)
	}
}
