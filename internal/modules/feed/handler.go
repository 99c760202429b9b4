package feed

import (
	"log"
	"net/http"
	"strings"

	"clipstream/internal/middleware"
	"clipstream/internal/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer in front of the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type tokenVerifier interface {
	Verify(tokenStr string, kind token.Kind) (int64, error)
}

type Handler struct {
	hub    *Hub
	tokens tokenVerifier
}

func NewHandler(hub *Hub, tokens tokenVerifier) *Handler {
	return &Handler{hub: hub, tokens: tokens}
}

// RegisterRoutes registers the websocket endpoint on the public group.
// Browsers cannot set headers on websocket dials, so the access token
// arrives via query param or cookie and is verified here instead of in
// the auth middleware.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/feed/ws", h.Connect)
}

func (h *Handler) Connect(c *gin.Context) {
	tokenStr := h.extractToken(c)
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
		return
	}

	userID, err := h.tokens.Verify(tokenStr, token.KindAccess)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("level=warn msg=\"websocket upgrade failed\" user_id=%d err=%v", userID, err)
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID, conn)

	// The feed is push-only; the read loop just detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) extractToken(c *gin.Context) string {
	if t := c.Query("token"); t != "" {
		return t
	}
	if t, err := c.Cookie(middleware.AccessCookieName); err == nil && t != "" {
		return t
	}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
