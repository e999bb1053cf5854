package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ContextKeyOwner = "owner_id"
	ContextKeyUser  = "user_id"

	HeaderSessionID = "X-Session-ID"
	CookieSession   = "platypus_session"
	CookieAuthToken = "access_token"
)

// OwnerID is the key every per-visitor store is namespaced by.
func OwnerID(c *gin.Context) string {
	return c.GetString(ContextKeyOwner)
}

// Session identifies the visitor. A valid token signed with secret makes
// the owner "user:<id>"; anyone else is a guest keyed by the session
// header or cookie, and gets a fresh session id when they have neither.
// Invalid or expired tokens fall back to guest.
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := userFromToken(c, secret); userID != "" {
			c.Set(ContextKeyUser, userID)
			c.Set(ContextKeyOwner, "user:"+userID)
			c.Next()
			return
		}

		sid := strings.TrimSpace(c.GetHeader(HeaderSessionID))
		if sid == "" {
			sid, _ = c.Cookie(CookieSession)
		}
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.SetCookie(CookieSession, sid, 30*24*3600, "/", "", false, true)
		}

		c.Header(HeaderSessionID, sid)
		c.Set(ContextKeyOwner, "guest:"+sid)
		c.Next()
	}
}

func userFromToken(c *gin.Context, secret string) string {
	if secret == "" {
		return ""
	}

	tokenString, err := c.Cookie(CookieAuthToken)
	if err != nil || tokenString == "" {
		tokenString = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	if tokenString == "" {
		return ""
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
