package video

import (
	"errors"
	"mime/multipart"
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
	videos := protected.Group("/videos")
	{
		videos.POST("", h.Publish)
		videos.GET("/:id", h.Get)
		videos.GET("/:id/source", h.SourceURL)
		videos.GET("/channel/:channelId", h.ListByChannel)
		videos.PATCH("/:id", h.Update)
		videos.DELETE("/:id", h.Delete)
		videos.PATCH("/:id/publish", h.TogglePublish)
	}
}

func (h *Handler) Publish(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req PublishRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
		return
	}

	fileHeader, err := c.FormFile("videoFile")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "A video file is required")
		return
	}
	file, err := openUpload(fileHeader)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UPLOAD_FAILED", "Could not read video file")
		return
	}
	defer file.close()

	var thumb *Upload
	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		t, err := openUpload(thumbHeader)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "UPLOAD_FAILED", "Could not read thumbnail")
			return
		}
		defer t.close()
		thumb = &t.Upload
	}

	v, err := h.service.Publish(c.Request.Context(), userID, req, file.Upload, thumb)
	if err != nil {
		if errors.Is(err, ErrUploadsDisabled) {
			response.Error(c, http.StatusServiceUnavailable, "UPLOADS_DISABLED", "Media storage is not configured")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to publish video")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"video": toResponse(v)})
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64("user_id")
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	v, err := h.service.Get(c.Request.Context(), videoID, userID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch video")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"video": toResponse(v)})
}

func (h *Handler) ListByChannel(c *gin.Context) {
	userID := c.GetInt64("user_id")
	channelID, err := strconv.ParseInt(c.Param("channelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid channel ID")
		return
	}

	page, limit := paging(c)
	list, err := h.service.ListByChannel(c.Request.Context(), channelID, userID, page, limit)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to fetch videos")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
		return
	}

	v, err := h.service.Update(c.Request.Context(), videoID, userID, req, nil)
	if err != nil {
		h.writeError(c, err, "Failed to update video")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"video": toResponse(v)})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), videoID, userID); err != nil {
		h.writeError(c, err, "Failed to delete video")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// SourceURL hands the owner a presigned download link for the raw
// upload, drafts included.
func (h *Handler) SourceURL(c *gin.Context) {
	userID := c.GetInt64("user_id")
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	url, err := h.service.SourceURL(c.Request.Context(), videoID, userID)
	if err != nil {
		if errors.Is(err, ErrUploadsDisabled) {
			response.Error(c, http.StatusServiceUnavailable, "UPLOADS_DISABLED", "Media storage is not configured")
			return
		}
		h.writeError(c, err, "Failed to create download link")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}

func (h *Handler) TogglePublish(c *gin.Context) {
	userID := c.GetInt64("user_id")
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid video ID")
		return
	}

	v, err := h.service.TogglePublish(c.Request.Context(), videoID, userID)
	if err != nil {
		h.writeError(c, err, "Failed to toggle publish state")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"video": toResponse(v)})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrVideoNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Video not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this video")
	default:
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", fallback)
	}
}

type openedUpload struct {
	Upload
	file multipart.File
}

func (o *openedUpload) close() {
	o.file.Close()
}

func openUpload(header *multipart.FileHeader) (*openedUpload, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &openedUpload{
		Upload: Upload{
			ContentType: header.Header.Get("Content-Type"),
			Body:        f,
		},
		file: f,
	}, nil
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
