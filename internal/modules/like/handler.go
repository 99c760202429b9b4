package like

import (
	"context"
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
	likes := protected.Group("/likes")
	{
		likes.POST("/toggle/video/:id", h.ToggleVideo)
		likes.POST("/toggle/comment/:id", h.ToggleComment)
		likes.POST("/toggle/tweet/:id", h.ToggleTweet)
		likes.GET("/videos", h.LikedVideos)
	}
}

func (h *Handler) ToggleVideo(c *gin.Context) {
	h.runToggle(c, h.service.ToggleVideoLike)
}

func (h *Handler) ToggleComment(c *gin.Context) {
	h.runToggle(c, h.service.ToggleCommentLike)
}

func (h *Handler) ToggleTweet(c *gin.Context) {
	h.runToggle(c, h.service.ToggleTweetLike)
}

func (h *Handler) runToggle(c *gin.Context, toggle func(ctx context.Context, userID, targetID int64) (*ToggleResult, error)) {
	userID := c.GetInt64("user_id")
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid target ID")
		return
	}

	result, err := toggle(c.Request.Context(), userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, ErrVideoNotFound),
			errors.Is(err, ErrCommentNotFound),
			errors.Is(err, ErrTweetNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Like target not found")
		default:
			response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to toggle like")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) LikedVideos(c *gin.Context) {
	userID := c.GetInt64("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	videos, total, err := h.service.GetLikedVideos(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to fetch liked videos")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"videos": videos,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}
