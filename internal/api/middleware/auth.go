package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/sphera-world/market-engine/internal/api/shared/errors"
	"github.com/sphera-world/market-engine/internal/domain"
	"github.com/sphera-world/market-engine/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	CALLER_KEY     contextKey = "caller"
	JWT_CLAIMS_KEY contextKey = "jwt_claims"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
}

// Claims are the JWT claims of a marketplace user.
// The subject is the user's ledger account id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// Caller returns the identity the claims stand for
func (c *Claims) Caller() domain.Caller {
	return domain.Caller{UserID: c.UserID, AccountID: c.Subject}
}

// Authenticator validates bearer tokens against a parsed RSA key
type Authenticator struct {
	publicKey *rsa.PublicKey
}

// NewAuthenticator parses the configured public key once
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	if cfg.JWTPublicKey == "" {
		return nil, errors.New("JWT public key not configured")
	}
	publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}
	return &Authenticator{publicKey: publicKey}, nil
}

// Authenticate validates the Authorization header and returns the claims
func (a *Authenticator) Authenticate(authHeader string) (*Claims, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid Authorization header format")
	}
	if !strings.EqualFold(parts[0], "bearer") {
		return nil, fmt.Errorf("unsupported authorization type: %s", parts[0])
	}

	return a.validateJWT(parts[1])
}

// Auth returns a gin middleware requiring a valid bearer token
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid bearer token is present and lets anonymous requests through
func OptionalAuth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		claims, err := a.Authenticate(header)
		if err != nil {
			logger.DebugCtx(c.Request.Context(), "Ignoring invalid optional credentials", zap.Error(err))
			c.Next()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// CallerFrom returns the authenticated caller of the request
func CallerFrom(c *gin.Context) (domain.Caller, bool) {
	v, ok := c.Get(string(CALLER_KEY))
	if !ok {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	return caller, ok
}

func setCaller(c *gin.Context, claims *Claims) {
	c.Set(string(JWT_CLAIMS_KEY), claims)
	c.Set(string(CALLER_KEY), claims.Caller())
	logger.DebugCtx(c.Request.Context(), "JWT authentication successful",
		zap.String("path", c.Request.URL.Path),
		zap.String("subject", claims.Subject),
		zap.Int64("uid", claims.UserID),
	)
}

// validateJWT validates an RS256 token and returns its claims
func (a *Authenticator) validateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	if _, err := domain.ParseEntityID(claims.Subject); err != nil {
		return nil, fmt.Errorf("token subject is not an account id: %w", err)
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
