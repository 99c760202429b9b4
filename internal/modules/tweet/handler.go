package tweet

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
	tweets := protected.Group("/tweets")
	{
		tweets.POST("", h.Create)
		tweets.GET("/user/:userId", h.ListByUser)
		tweets.PATCH("/:id", h.Update)
		tweets.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tweet content is required")
		return
	}

	t, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to create tweet")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"tweet": toResponse(t)})
}

func (h *Handler) ListByUser(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	page, limit := paging(c)
	list, err := h.service.ListByUser(c.Request.Context(), targetID, page, limit)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to fetch tweets")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	tweetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid tweet ID")
		return
	}

	var req UpdateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tweet content is required")
		return
	}

	t, err := h.service.Update(c.Request.Context(), tweetID, userID, req)
	if err != nil {
		h.writeError(c, err, "Failed to update tweet")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tweet": toResponse(t)})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	tweetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid tweet ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), tweetID, userID); err != nil {
		h.writeError(c, err, "Failed to delete tweet")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrTweetNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tweet not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this tweet")
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
