package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/family_finance_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware records one event per successful authenticated request,
// named after the route, e.g. "/api/v1/accounts/:id" becomes
// "api_v1_accounts_:id".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if identity, ok := GetIdentityFromContext(c); ok {
			if teamID, ok := identity.CurrentTeam(); ok {
				props["team_id"] = teamID
			}
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
