package comment

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
	comments := protected.Group("/comments")
	{
		comments.POST("/video/:videoId", h.Create)
		comments.GET("/video/:videoId", h.ListByVideo)
		comments.PATCH("/:id", h.Update)
		comments.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	videoID, err := strconv.ParseInt(c.Param("videoId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Comment content is required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), videoID, userID, req)
	if err != nil {
		h.writeError(c, err, "Failed to create comment")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": toResponse(created)})
}

func (h *Handler) ListByVideo(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("videoId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	page, limit := paging(c)
	list, err := h.service.ListByVideo(c.Request.Context(), videoID, page, limit)
	if err != nil {
		h.writeError(c, err, "Failed to fetch comments")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid comment ID")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Comment content is required")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), commentID, userID, req)
	if err != nil {
		h.writeError(c, err, "Failed to update comment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"comment": toResponse(updated)})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid comment ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), commentID, userID); err != nil {
		h.writeError(c, err, "Failed to delete comment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	case errors.Is(err, ErrVideoNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Video not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this comment")
	default:
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", fallback)
	}
}

func paging(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
