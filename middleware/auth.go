package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecomdemo/storefront-api/auth"
)

// ContextUserID is where ValidateToken stores the authenticated user id.
const ContextUserID = "user_id"

// ValidateToken guards every cart/order route. The three failure shapes
// (no header, malformed header, bad token) get distinct messages but the
// same 401 status.
func ValidateToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bad Authorization format"})
			c.Abort()
			return
		}

		claims, err := auth.VerifyToken(parts[1], secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID pulls the authenticated user id set by ValidateToken.
func UserID(c *gin.Context) string {
	v, _ := c.Get(ContextUserID)
	id, _ := v.(string)
	return id
}
