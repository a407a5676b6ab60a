package server

import (
	"crypto/subtle"
	"net/http"
	"time"

	"auction-client/internal/session"
	"auction-client/internal/transport"
	"auction-client/services/auction/helpers"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// SessionLookup resolves a session cookie to a user ID
type SessionLookup interface {
	SessionUser(token string) (int64, bool)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetHeader(transport.RequestIDHeader),
	})
}

// SessionMiddleware attaches the signed-in user, if any, to the context
func SessionMiddleware(sessions SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(session.SessionCookieName); err == nil {
			if userID, ok := sessions.SessionUser(token); ok {
				c.Set(helpers.UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// CSRFMiddleware issues the anti-forgery cookie on safe requests and checks
// the echoed header on unsafe ones. Like the backend it only enforces the
// check for signed-in users.
func CSRFMiddleware(c *gin.Context) {
	cookie, err := c.Cookie(transport.CSRFCookieName)

	if isSafeMethod(c.Request.Method) {
		if err != nil || cookie == "" {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     transport.CSRFCookieName,
				Value:    utils.GenerateToken(),
				Path:     "/",
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Next()
		return
	}

	if _, signedIn := c.Get(helpers.UserIDKey); signedIn {
		header := c.GetHeader(transport.CSRFHeader)
		if cookie == "" || subtle.ConstantTimeCompare([]byte(header), []byte(cookie)) != 1 {
			utils.Warn("CSRFMiddleware: rejected request", map[string]any{
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"has_cookie": cookie != "",
				"has_header": header != "",
			})
			utils.JSONError(c, http.StatusForbidden, helpers.CSRFFailedMessage)
			return
		}
	}
	c.Next()
}

// RequireUser rejects anonymous requests
func RequireUser(c *gin.Context) {
	if _, ok := c.Get(helpers.UserIDKey); !ok {
		utils.JSONError(c, http.StatusForbidden, helpers.NotAuthenticated)
		return
	}
	c.Next()
}

// RequireUserForWrites lets anonymous callers read but not write
func RequireUserForWrites(c *gin.Context) {
	if isSafeMethod(c.Request.Method) {
		c.Next()
		return
	}
	RequireUser(c)
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
