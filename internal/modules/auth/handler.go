package auth

import (
	"errors"
	"net/http"
	"strings"

	"clipstream/internal/config"
	"clipstream/internal/domain"
	"clipstream/internal/pkg/media"
	"clipstream/internal/pkg/response"
	"clipstream/internal/pkg/token"
	"clipstream/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Cookie names are shared with middleware.JWTAuth's fallback lookup.
const (
	accessCookie  = "accessToken"
	refreshCookie = "refreshToken"
)

type Handler struct {
	service *Service
	media   media.Store
	cfg     *config.AuthConfig
}

// NewHandler wires the auth HTTP surface. media may be nil; profile
// image uploads are then rejected.
func NewHandler(service *Service, mediaStore media.Store, cfg *config.AuthConfig) *Handler {
	return &Handler{service: service, media: mediaStore, cfg: cfg}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", h.Logout)

	users := protected.Group("/users")
	{
		users.GET("/me", h.GetMe)
		users.PUT("/me", h.UpdateAccount)
		users.POST("/me/password", h.ChangePassword)
		users.PUT("/me/images", h.UpdateProfileImages)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	isMultipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")
	if isMultipart {
		if err := c.ShouldBind(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if violations := validator.Validate(&req); violations != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid registration fields", violations)
		return
	}

	if isMultipart {
		avatarURL, coverURL, err := h.uploadProfileImages(c)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store profile images")
			return
		}
		req.AvatarURL = avatarURL
		req.CoverURL = coverURL
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			response.Error(c, http.StatusConflict, "USER_EXISTS", "Username or email is already registered")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": userPayload(user)})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Identifier or password is incorrect")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to login")
		return
	}

	h.setAuthCookies(c, pair)
	response.Success(c, http.StatusOK, gin.H{
		"user":         userPayload(user),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// Refresh reads the refresh token from the cookie, falling back to the
// request body for clients that do not use cookies.
func (h *Handler) Refresh(c *gin.Context) {
	presented, _ := c.Cookie(refreshCookie)
	if presented == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	pair, err := h.service.RefreshSession(c.Request.Context(), presented)
	if err != nil {
		h.clearAuthCookies(c)
		switch {
		case errors.Is(err, ErrUnauthenticated):
			response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", "No refresh token presented")
		case errors.Is(err, token.ErrExpired):
			response.Error(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Refresh token expired, login again")
		case errors.Is(err, ErrTokenReused):
			response.Error(c, http.StatusUnauthorized, "TOKEN_REUSED", "Refresh token already used or revoked, login again")
		case errors.Is(err, token.ErrInvalidToken):
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid refresh token")
		default:
			response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to refresh session")
		}
		return
	}

	h.setAuthCookies(c, pair)
	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to logout")
		return
	}

	h.clearAuthCookies(c)
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Failed to load user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userPayload(user)})
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateAccount(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Could not update account")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userPayload(user)})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Old password is incorrect")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Could not change password")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) UpdateProfileImages(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if h.media == nil {
		response.Error(c, http.StatusServiceUnavailable, "UPLOADS_DISABLED", "Media storage is not configured")
		return
	}

	avatarURL, coverURL, err := h.uploadProfileImages(c)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store profile images")
		return
	}
	if avatarURL == "" && coverURL == "" {
		response.Error(c, http.StatusBadRequest, "NO_FILES", "No avatar or cover file uploaded")
		return
	}

	user, err := h.service.UpdateProfileImages(c.Request.Context(), userID, avatarURL, coverURL)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Could not update profile images")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userPayload(user)})
}

func (h *Handler) uploadProfileImages(c *gin.Context) (avatarURL, coverURL string, err error) {
	if h.media == nil {
		return "", "", nil
	}

	for _, field := range []struct {
		name string
		dst  *string
	}{
		{"avatar", &avatarURL},
		{"coverImage", &coverURL},
	} {
		fileHeader, fErr := c.FormFile(field.name)
		if fErr != nil {
			continue
		}
		f, fErr := fileHeader.Open()
		if fErr != nil {
			return "", "", fErr
		}
		url, fErr := h.media.Put(c.Request.Context(), media.RandomKey("images"), fileHeader.Header.Get("Content-Type"), f)
		f.Close()
		if fErr != nil {
			return "", "", fErr
		}
		*field.dst = url
	}
	return avatarURL, coverURL, nil
}

// Cookies carry the same lifetime as the token they hold.
func (h *Handler) setAuthCookies(c *gin.Context, pair *TokenPair) {
	c.SetSameSite(sameSiteMode(h.cfg.CookieSameSite))
	c.SetCookie(accessCookie, pair.AccessToken, int(h.cfg.AccessTokenTTL.Seconds()), h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
	c.SetCookie(refreshCookie, pair.RefreshToken, int(h.cfg.RefreshTokenTTL.Seconds()), h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
}

func (h *Handler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(sameSiteMode(h.cfg.CookieSameSite))
	c.SetCookie(accessCookie, "", -1, h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
	c.SetCookie(refreshCookie, "", -1, h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
}

func sameSiteMode(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func userPayload(u *domain.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"full_name":  u.FullName,
		"avatar_url": u.AvatarURL,
		"cover_url":  u.CoverURL,
	}
}
