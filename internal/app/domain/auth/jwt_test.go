package auth

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/middleware"
	"github.com/FACorreiaa/passadia/internal/app/models"
)

func testConfig() JWTConfig {
	return JWTConfig{
		SecretKey:       "test-secret-key-with-at-least-32-chars",
		TokenExpiration: time.Hour,
		Logger:          zap.NewNop(),
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService()
	cfg := testConfig()

	token, err := svc.GenerateToken(cfg, "u-1", "ana@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestGenerateToken_RequiresEmail(t *testing.T) {
	_, err := NewJWTService().GenerateToken(testConfig(), "u-1", "")
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestValidateToken_Failures(t *testing.T) {
	cfg := testConfig()
	svc := NewJWTService()

	expired := testConfig()
	expired.TokenExpiration = -time.Minute
	expiredToken, err := svc.GenerateToken(expired, "u-1", "ana@example.com")
	require.NoError(t, err)

	otherSecret := testConfig()
	otherSecret.SecretKey = "another-secret-key-with-32-chars-min"
	foreignToken, err := svc.GenerateToken(otherSecret, "u-1", "ana@example.com")
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u-1"}).SignedString([]byte(cfg.SecretKey))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", expiredToken},
		{"wrong secret", foreignToken},
		{"missing email", noEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(cfg, tt.token)
			assert.ErrorIs(t, err, models.ErrUnauthenticated)
		})
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	token, err := NewJWTService().GenerateToken(cfg, "u-1", "ana@example.com")
	require.NoError(t, err)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(JWTAuthMiddleware(cfg))
		r.GET("/me", func(c *gin.Context) {
			email, _ := middleware.EmailFromContext(c)
			c.String(http.StatusOK, email)
		})
		return r
	}

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "bearer header", header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: "ana@example.com"},
		{name: "cookie", cookie: token, wantStatus: http.StatusOK, wantBody: "ana@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestAuthTokenHandler_GenerateToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthTokenHandler(zap.NewNop(), testConfig())
	r := gin.New()
	r.POST("/token", h.GenerateToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/token", bytes.NewBufferString(`{"email":"ana@example.com"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/token", bytes.NewBufferString(`{"email":"nope"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
