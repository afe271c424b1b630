package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adaptivegame/internal/shared/config"
)

// SessionCookie is the name of the opaque session identifier cookie.
const SessionCookie = "userId"

// SetSessionCookie sets the session identifier as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, userID uint, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		SessionCookie,
		strconv.FormatUint(uint64(userID), 10),
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		SessionCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetSessionUserID reads the session cookie and parses the user identifier.
// Returns (0, false) when the cookie is absent or malformed.
func GetSessionUserID(c *gin.Context) (uint, bool) {
	value, err := c.Cookie(SessionCookie)
	if err != nil || value == "" {
		return 0, false
	}

	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

func parseSameSite(value string) http.SameSite {
	switch value {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
