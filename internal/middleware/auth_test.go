package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(testSecret, "hr-payroll-admin"))
	r.GET("/me", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	return r
}

// signToken issues an HS256 token the way the identity provider does.
func signToken(t *testing.T, userID string, ttl time.Duration, issuer string) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	valid := signToken(t, "admin-1", time.Hour, "hr-payroll-admin")
	wrongIssuer := signToken(t, "admin-1", time.Hour, "someone-else")
	expired := signToken(t, "admin-1", -time.Hour, "hr-payroll-admin")

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "admin-1"},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "bad scheme", header: "Token " + valid, wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer, wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimit_KeysByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := NewMemoryLimiter("1-M")
	require.NoError(t, err)
	token := signToken(t, "admin-1", time.Hour, "")

	r := gin.New()
	r.Use(AuthMiddleware(testSecret, ""), RateLimit(lim))
	r.POST("/import", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/import", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusAccepted, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestNewMemoryLimiter_InvalidRate(t *testing.T) {
	_, err := NewMemoryLimiter("ten per minute")
	assert.Error(t, err)
}

func TestGetLoggerFromCtx_DefaultsWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotNil(t, GetLoggerFromCtx(req.Context()))
}
