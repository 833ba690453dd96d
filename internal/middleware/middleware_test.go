package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"career_portal/internal/domain"
	"career_portal/internal/store"
	"career_portal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

type fakeUsers map[uint]domain.User

func (f fakeUsers) FindByID(_ context.Context, id uint) (domain.User, error) {
	u, ok := f[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

type failingUsers struct{}

func (failingUsers) FindByID(context.Context, uint) (domain.User, error) {
	return domain.User{}, errors.New("connection refused")
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(users UserFinder) *gin.Engine {
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(secret, users), RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "hasPassword": user.Password != ""})
	})
	r.GET("/any", JWTAuthMiddleware(secret, users), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/unguarded", RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func mustToken(t *testing.T, id uint) string {
	t.Helper()
	token, err := utils.GenerateJWT(id, secret)
	require.NoError(t, err)
	return token
}

var users = fakeUsers{
	1: {ID: 1, Email: "admin@example.com", Password: "hash", Role: domain.RoleAdmin},
	2: {ID: 2, Email: "user@example.com", Password: "hash", Role: domain.RoleUser},
}

func TestJWTAuthMiddleware_AcceptedHeaders(t *testing.T) {
	r := newRouter(users)
	token := mustToken(t, 1)

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "bearer authorization", headers: map[string]string{"Authorization": "Bearer " + token}},
		{name: "lowercase bearer", headers: map[string]string{"authorization": "bearer " + token}},
		{name: "raw authorization", headers: map[string]string{"Authorization": token}},
		{name: "token header", headers: map[string]string{"token": token}},
		{name: "uppercase token header", headers: map[string]string{"TOKEN": token}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(r, "/admin", tt.headers)
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, float64(1), body["id"])
			assert.Equal(t, false, body["hasPassword"])
		})
	}
}

func TestJWTAuthMiddleware_Unauthorized(t *testing.T) {
	r := newRouter(users)
	expired, err := utils.GenerateJWTAt(1, secret, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	forged, err := utils.GenerateJWT(1, "another-secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "no token", headers: nil},
		{name: "empty bearer", headers: map[string]string{"Authorization": "Bearer "}},
		{name: "garbage", headers: map[string]string{"Authorization": "Bearer nope"}},
		{name: "expired", headers: map[string]string{"Authorization": "Bearer " + expired}},
		{name: "wrong secret", headers: map[string]string{"token": forged}},
		{name: "unknown user", headers: map[string]string{"token": mustToken(t, 404)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(r, "/admin", tt.headers)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestJWTAuthMiddleware_LookupFailure(t *testing.T) {
	r := newRouter(failingUsers{})
	rr := do(r, "/any", map[string]string{"token": mustToken(t, 1)})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestRequireRole(t *testing.T) {
	r := newRouter(users)

	rr := do(r, "/admin", map[string]string{"token": mustToken(t, 2)})
	assert.Equal(t, http.StatusForbidden, rr.Code, "valid identity without the role is forbidden")

	rr = do(r, "/any", map[string]string{"token": mustToken(t, 2)})
	assert.Equal(t, http.StatusNoContent, rr.Code, "non admin routes only need a valid identity")

	rr = do(r, "/unguarded", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code, "missing identity is unauthorized, not forbidden")
}
