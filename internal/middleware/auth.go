package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/logger"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/contextkeys"
)

// AuthMiddleware resolves the bearer token (the caller's numeric user id) to
// a user row. Protected handlers downstream read the principal from the gin
// context via GetCurrentUser.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		db := dbFromGin(c)
		user, err := authService.Authenticate(db, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)

		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(user.ID), 10))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetCurrentUser extracts the authenticated user set by AuthMiddleware.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// dbFromGin pulls the *gorm.DB placed in the context by DBMiddleware.
func dbFromGin(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		panic("critical error: DBMiddleware did not set the db key")
	}
	db, ok := val.(*gorm.DB)
	if !ok {
		panic("critical error: db in context has incorrect type")
	}
	return db
}
