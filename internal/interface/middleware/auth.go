package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jcgarciar/tasks-backend/pkg/helpers"
	"github.com/jcgarciar/tasks-backend/pkg/response"
)

// Context keys set by BearerAuth for downstream handlers.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// BearerAuth extracts a `Bearer <token>` credential from the Authorization
// header and validates it.
//
// A missing token answers with a plain-text 401 body ("Token not found")
// while an invalid one answers with the JSON error envelope; clients depend
// on both shapes. The gate always aborts on failure before the handler runs.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.String(http.StatusUnauthorized, "Token not found")
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
