package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/enum"
	infraRepo "github.com/barpoint/barpoint-api/internal/infrastructure/repository"
	"github.com/barpoint/barpoint-api/internal/presentation/http/middleware"
	"github.com/barpoint/barpoint-api/pkg/utils"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	router := gin.New()

	protected := router.Group("/", middleware.AuthMiddleware(jwtManager))
	protected.GET("/me", func(c *gin.Context) {
		tenantID, hasTenant := infraRepo.GetTenantID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"user_id":    middleware.GetUserID(c),
			"company_id": middleware.GetCompanyID(c),
			"user_type":  middleware.GetUserType(c),
			"tenant":     tenantID,
			"has_tenant": hasTenant,
		})
	})

	admin := protected.Group("/system", middleware.RequireSystemAdmin())
	admin.GET("/companies", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtManager
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareRejections(t *testing.T) {
	router, jwtManager := newAuthRouter(t)

	expired := utils.NewJWTManager("test-secret", -time.Hour)
	expiredToken, err := expired.GenerateToken(uuid.New(), uuid.New(), string(enum.UserTypeCompanyAdmin), "ze@bar.com.br")
	qt.Assert(t, err, qt.IsNil)

	otherSecret := utils.NewJWTManager("other-secret", time.Hour)
	foreignToken, err := otherSecret.GenerateToken(uuid.New(), uuid.New(), string(enum.UserTypeCompanyAdmin), "ze@bar.com.br")
	qt.Assert(t, err, qt.IsNil)

	badType, err := jwtManager.GenerateToken(uuid.New(), uuid.New(), "superuser", "ze@bar.com.br")
	qt.Assert(t, err, qt.IsNil)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong secret", "Bearer " + foreignToken},
		{"unknown user type", "Bearer " + badType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			rec := doRequest(router, "/me", tt.header)
			c.Assert(rec.Code, qt.Equals, http.StatusUnauthorized)
		})
	}
}

func TestAuthMiddlewareInjectsTenant(t *testing.T) {
	c := qt.New(t)
	router, jwtManager := newAuthRouter(t)

	userID := uuid.New()
	companyID := uuid.New()
	token, err := jwtManager.GenerateToken(userID, companyID, string(enum.UserTypeCompanyAdmin), "ze@bar.com.br")
	c.Assert(err, qt.IsNil)

	rec := doRequest(router, "/me", "Bearer "+token)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.String(), qt.Contains, userID.String())
	c.Assert(rec.Body.String(), qt.Contains, companyID.String())
	c.Assert(rec.Body.String(), qt.Contains, `"has_tenant":true`)
}

func TestAuthMiddlewareSystemAdminHasNoTenant(t *testing.T) {
	c := qt.New(t)
	router, jwtManager := newAuthRouter(t)

	token, err := jwtManager.GenerateToken(uuid.New(), uuid.Nil, string(enum.UserTypeSystemAdmin), "admin@barpoint.com.br")
	c.Assert(err, qt.IsNil)

	rec := doRequest(router, "/me", "Bearer "+token)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.String(), qt.Contains, `"has_tenant":false`)
}

func TestRequireSystemAdmin(t *testing.T) {
	c := qt.New(t)
	router, jwtManager := newAuthRouter(t)

	adminToken, err := jwtManager.GenerateToken(uuid.New(), uuid.Nil, string(enum.UserTypeSystemAdmin), "admin@barpoint.com.br")
	c.Assert(err, qt.IsNil)
	companyToken, err := jwtManager.GenerateToken(uuid.New(), uuid.New(), string(enum.UserTypeCompanyAdmin), "ze@bar.com.br")
	c.Assert(err, qt.IsNil)

	rec := doRequest(router, "/system/companies", "Bearer "+adminToken)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)

	rec = doRequest(router, "/system/companies", "Bearer "+companyToken)
	c.Assert(rec.Code, qt.Equals, http.StatusForbidden)
}
