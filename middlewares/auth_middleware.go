// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"caltrack/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

// SessionAuth gates protected routes on the signed session cookie. API and
// websocket paths get a JSON 401; browser-facing paths are redirected to the
// login page instead. The divergence is deliberate so programmatic clients
// never see a redirect.
func SessionAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			reject(c)
			return
		}

		userID, err := utils.ParseSessionToken(tokenString, secret)
		if err != nil {
			reject(c)
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func reject(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/ws/") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
