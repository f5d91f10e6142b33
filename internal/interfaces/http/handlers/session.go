// internal/interfaces/http/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/mealbox-backend/internal/pkg/i18n"
)

// getOrCreateSessionID returns the shopping session id for the request.
// All transient state (cart, configurator sessions) is keyed by it.
func getOrCreateSessionID(c *gin.Context) string {
	// Try to get session ID from cookie
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		// Generate new session ID
		sessionID = uuid.New().String()

		// Set session cookie (24 hours)
		c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}

	return sessionID
}

// requestLocale resolves the display locale for the request from the "lang"
// query parameter or the Accept-Language header, defaulting to Arabic.
func requestLocale(c *gin.Context) i18n.Locale {
	if lang := c.Query("lang"); lang != "" {
		return i18n.ParseLocale(lang)
	}

	header := c.GetHeader("Accept-Language")
	if len(header) >= 2 {
		return i18n.ParseLocale(header[:2])
	}
	return i18n.DefaultLocale
}
