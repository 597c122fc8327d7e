package auth

import (
	"net/http"
	"strings"

	"choir-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the caller context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("auth_claims", claims)
		c.Next()
	}
}

// GetAuthContext extracts the service-layer caller identity from the request
func GetAuthContext(c *gin.Context) (*service.AuthContext, bool) {
	value, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*AuthClaims)
	if !ok {
		return nil, false
	}

	kind := service.CallerKindUser
	if claims.Kind == "admin" {
		kind = service.CallerKindAdmin
	}
	return &service.AuthContext{
		UserID:   claims.UserID,
		Kind:     kind,
		Category: claims.Category,
	}, true
}
