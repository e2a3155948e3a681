package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidatePathIDs answers 404 for any ":id" or ":*_id" route parameter that
// is not a uuid. Such an id cannot name a stored row.
func ValidatePathIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range c.Params {
			if p.Key != "id" && !strings.HasSuffix(p.Key, "_id") {
				continue
			}
			if err := uuid.Validate(p.Value); err != nil {
				GetLoggerFromCtx(c.Request.Context()).Warn("Rejected malformed path id",
					slog.String("param", p.Key),
					slog.String("value", p.Value))
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
		}
		c.Next()
	}
}
