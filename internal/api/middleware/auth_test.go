package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphera-world/market-engine/internal/api/middleware"
	"github.com/sphera-world/market-engine/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func sign(t *testing.T, key *rsa.PrivateKey, claims middleware.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() middleware.Claims {
	return middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "0.0.7001",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 42,
	}
}

func setupRouter(t *testing.T, handler func(*middleware.Authenticator) gin.HandlerFunc) (*gin.Engine, *rsa.PrivateKey) {
	key, publicPEM := newKeyPair(t)
	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: publicPEM})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", handler(auth), func(c *gin.Context) {
		caller, ok := middleware.CallerFrom(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, caller)
	})
	return router, key
}

func TestNewAuthenticator_RequiresKey(t *testing.T) {
	_, err := middleware.NewAuthenticator(middleware.AuthConfig{})
	assert.Error(t, err)

	_, err = middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestAuth_ValidToken(t *testing.T) {
	router, key := setupRouter(t, middleware.Auth)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, key, validClaims()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"UserID":42,"AccountID":"0.0.7001"}`, w.Body.String())
}

func TestAuth_Rejects(t *testing.T) {
	router, key := setupRouter(t, middleware.Auth)
	otherKey, _ := newKeyPair(t)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noSubject := validClaims()
	noSubject.Subject = ""

	badSubject := validClaims()
	badSubject.Subject = "alice"

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "ApiKey secret"},
		{name: "malformed header", header: "Bearer"},
		{name: "expired", header: "Bearer " + sign(t, key, expired)},
		{name: "no subject", header: "Bearer " + sign(t, key, noSubject)},
		{name: "subject is not an account", header: "Bearer " + sign(t, key, badSubject)},
		{name: "foreign key", header: "Bearer " + sign(t, otherKey, validClaims())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
		})
	}
}

func TestAuth_RejectsHS256(t *testing.T) {
	router, _ := setupRouter(t, middleware.Auth)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	router, key := setupRouter(t, middleware.OptionalAuth)

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"anonymous":true}`, w.Body.String())
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"anonymous":true}`, w.Body.String())
	})

	t.Run("valid token sets caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, key, validClaims()))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"UserID":42,"AccountID":"0.0.7001"}`, w.Body.String())
	})
}

func TestClaims_Caller(t *testing.T) {
	claims := validClaims()
	assert.Equal(t, domain.Caller{UserID: 42, AccountID: "0.0.7001"}, claims.Caller())
}
