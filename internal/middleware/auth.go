package middleware

import (
	"errors"
	"net/http"
	"strings"

	"clipstream/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// AccessCookieName is the cookie the auth handler sets alongside the
// JSON response; mobile clients use the Authorization header instead.
const AccessCookieName = "accessToken"

type tokenVerifier interface {
	Verify(tokenStr string, kind token.Kind) (int64, error)
}

// JWTAuth validates the access token from the Authorization header or,
// failing that, the accessToken cookie, and puts user_id into the
// context.
func JWTAuth(tokens tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			if cookie, err := c.Cookie(AccessCookieName); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			abortUnauthorized(c, "UNAUTHORIZED", "Missing access token")
			return
		}

		userID, err := tokens.Verify(tokenStr, token.KindAccess)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortUnauthorized(c, "TOKEN_EXPIRED", "Access token expired")
				return
			}
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid access token")
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}
