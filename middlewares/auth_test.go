package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gateway/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	w := doRequest(t, testRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	w := doRequest(t, testRouter(), "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken(1, "desk", testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(t, testRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"desk"`)
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	deskToken, err := utils.GenerateToken(1, "desk", testSecret, time.Hour)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(2, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	adminOnly := testRouter("admin")
	assert.Equal(t, http.StatusForbidden, doRequest(t, adminOnly, deskToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, adminOnly, adminToken).Code)

	deskOrAdmin := testRouter("desk", "admin")
	assert.Equal(t, http.StatusOK, doRequest(t, deskOrAdmin, deskToken).Code)
}
