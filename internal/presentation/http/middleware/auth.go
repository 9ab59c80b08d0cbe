package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/response"
	"github.com/barpoint/barpoint-api/pkg/utils"
)

// AuthMiddleware validates the bearer token, stores the actor in the gin
// context and injects the tenant into the request context so repositories
// scope every query to the caller's company.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userType := enum.UserType(claims.UserType)
		if !userType.Valid() {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_type", userType)
		c.Set("company_id", claims.CompanyID)

		if claims.CompanyID != uuid.Nil {
			ctx := infraRepo.WithTenant(c.Request.Context(), claims.CompanyID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// RequireSystemAdmin restricts a route group to system administrators and
// lifts the tenant scope for them.
func RequireSystemAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetUserType(c).IsSystemAdmin() {
			response.Forbidden(c, "System administrator access required")
			c.Abort()
			return
		}

		ctx := infraRepo.WithSkipTenantScope(c.Request.Context(), true)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID retrieves the authenticated user ID from gin context
func GetUserID(c *gin.Context) uuid.UUID {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetCompanyID retrieves the authenticated company ID from gin context.
// Returns uuid.Nil for system admins.
func GetCompanyID(c *gin.Context) uuid.UUID {
	val, exists := c.Get("company_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetUserType retrieves the authenticated user type from gin context
func GetUserType(c *gin.Context) enum.UserType {
	val, exists := c.Get("user_type")
	if !exists {
		return ""
	}
	t, ok := val.(enum.UserType)
	if !ok {
		return ""
	}
	return t
}
