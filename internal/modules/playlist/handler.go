package playlist

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
	playlists := protected.Group("/playlists")
	{
		playlists.POST("", h.Create)
		playlists.GET("/user/:userId", h.ListByUser)
		playlists.GET("/:id", h.GetByID)
		playlists.PATCH("/:id", h.Update)
		playlists.DELETE("/:id", h.Delete)
		playlists.PATCH("/:id/videos/:videoId", h.AddVideo)
		playlists.DELETE("/:id/videos/:videoId", h.RemoveVideo)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Playlist name is required")
		return
	}

	p, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err, "Failed to create playlist")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"playlist": toResponse(p, nil)})
}

func (h *Handler) ListByUser(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	playlists, err := h.service.ListByOwner(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to fetch playlists")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"playlists": playlists})
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"playlist": p})
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Playlist name is required")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		h.writeError(c, err, "Failed to update playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"playlist": toResponse(p, nil)})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.writeError(c, err, "Failed to delete playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) AddVideo(c *gin.Context) {
	userID := c.GetInt64("user_id")
	videoID, err := strconv.ParseInt(c.Param("videoId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	if err := h.service.AddVideo(c.Request.Context(), c.Param("id"), userID, videoID); err != nil {
		h.writeError(c, err, "Failed to add video to playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) RemoveVideo(c *gin.Context) {
	userID := c.GetInt64("user_id")
	videoID, err := strconv.ParseInt(c.Param("videoId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	if err := h.service.RemoveVideo(c.Request.Context(), c.Param("id"), userID, videoID); err != nil {
		h.writeError(c, err, "Failed to remove video from playlist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPlaylistNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Playlist not found")
	case errors.Is(err, ErrVideoNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Video not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this playlist")
	case errors.Is(err, ErrNameTaken):
		response.Error(c, http.StatusConflict, "NAME_TAKEN", "You already have a playlist with that name")
	case errors.Is(err, ErrVideoAlreadyIn):
		response.Error(c, http.StatusConflict, "ALREADY_IN_PLAYLIST", "Video is already in this playlist")
	case errors.Is(err, ErrVideoNotIn):
		response.Error(c, http.StatusNotFound, "NOT_IN_PLAYLIST", "Video is not in this playlist")
	default:
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", fallback)
	}
}
