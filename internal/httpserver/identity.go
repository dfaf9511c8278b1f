package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"partymenu/internal/domain"
)

type ctxKey string

const (
	ownerCtxKey ctxKey = "cartOwner"
	userCtxKey  ctxKey = "authUser"
)

// sessionCookie names the cookie carrying the anonymous cart session id.
const sessionCookie = "cart_session"

// identityMiddleware resolves the cart owner for the request. A valid
// bearer token wins and binds the cart to the account; otherwise the
// session cookie is used, minting a fresh id when none is present.
func identityMiddleware(users UserService, sessions SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			u, err := users.LookupByToken(c.Request.Context(), token)
			if err != nil {
				respondError(c, http.StatusUnauthorized, "invalid or expired token")
				c.Abort()
				return
			}
			setIdentity(c, domain.AccountOwner(u.ID), u)
			c.Next()
			return
		}

		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || !sessions.ValidSessionID(sessionID) {
			sessionID = sessions.NewSessionID()
			c.SetCookie(sessionCookie, sessionID, sessions.CookieTTLSeconds(), "/", "", false, true)
		}
		setIdentity(c, domain.SessionOwner(sessionID), nil)
		c.Next()
	}
}

// requireAccount rejects requests that do not carry a valid access token.
func requireAccount(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}
		u, err := users.LookupByToken(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		setIdentity(c, domain.AccountOwner(u.ID), u)
		c.Next()
	}
}

// requireAdmin must run after requireAccount.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := userFromContext(c)
		if u == nil || !u.IsAdmin {
			respondError(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, owner domain.Owner, u *domain.User) {
	ctx := context.WithValue(c.Request.Context(), ownerCtxKey, owner)
	if u != nil {
		ctx = context.WithValue(ctx, userCtxKey, u)
	}
	c.Request = c.Request.WithContext(ctx)
}

func ownerFromContext(c *gin.Context) domain.Owner {
	owner, _ := c.Request.Context().Value(ownerCtxKey).(domain.Owner)
	return owner
}

func userFromContext(c *gin.Context) *domain.User {
	u, _ := c.Request.Context().Value(userCtxKey).(*domain.User)
	return u
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
