package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/middleware"
	"github.com/FACorreiaa/passadia/internal/app/models"
)

// JWTConfig holds JWT authentication configuration
type JWTConfig struct {
	SecretKey       string
	TokenExpiration time.Duration
	Logger          *zap.Logger
}

// Claims represents the JWT claims. The email claim is the walker identity.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService() *JWTService {
	return &JWTService{}
}

type JWTService struct{}

// GenerateToken generates a new JWT token
func (s *JWTService) GenerateToken(config JWTConfig, userID, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("token without email: %w", models.ErrBadRequest)
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(config.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.SecretKey))
	if err != nil {
		if config.Logger != nil {
			config.Logger.Error("Failed to sign token", zap.Error(err))
		}
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token
func (s *JWTService) ValidateToken(config JWTConfig, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.SecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthenticated)
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("token has no email claim: %w", models.ErrUnauthenticated)
	}

	return claims, nil
}

// bearerToken reads the token from the Authorization header, falling back to
// the auth_token cookie.
func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}

	return ""
}

// JWTAuthMiddleware rejects requests without a valid token and stores the
// walker identity on the request.
func JWTAuthMiddleware(config JWTConfig) gin.HandlerFunc {
	service := NewJWTService()

	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(401, models.ErrorResponse{Error: "authentication required"})
			return
		}

		claims, err := service.ValidateToken(config, tokenString)
		if err != nil {
			if config.Logger != nil && !errors.Is(err, models.ErrUnauthenticated) {
				config.Logger.Warn("Unexpected token validation failure", zap.Error(err))
			}
			c.AbortWithStatusJSON(401, models.ErrorResponse{Error: "invalid or expired token"})
			return
		}

		middleware.SetIdentity(c, claims.UserID, claims.Email)
		c.Next()
	}
}
