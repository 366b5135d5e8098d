package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/middleware"
	"github.com/FACorreiaa/passadia/internal/app/models"
)

// AuthTokenHandler issues tokens for development and verifies them.
type AuthTokenHandler struct {
	logger    *zap.Logger
	jwtConfig JWTConfig
	service   *JWTService
}

// NewAuthTokenHandler creates a new auth token handler
func NewAuthTokenHandler(logger *zap.Logger, jwtConfig JWTConfig) *AuthTokenHandler {
	return &AuthTokenHandler{
		logger:    logger,
		jwtConfig: jwtConfig,
		service:   NewJWTService(),
	}
}

// GenerateTokenRequest represents the request body for token generation
type GenerateTokenRequest struct {
	UserID string `json:"user_id"`
	Email  string `json:"email" binding:"required,email"`
}

// GenerateTokenResponse represents the token response
type GenerateTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
	Email     string `json:"email"`
}

// GenerateToken generates a JWT token for a walker email.
func (h *AuthTokenHandler) GenerateToken(c *gin.Context) {
	var req GenerateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid token request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, a valid email is required"})
		return
	}

	token, err := h.service.GenerateToken(h.jwtConfig, req.UserID, req.Email)
	if err != nil {
		h.logger.Error("Failed to generate token", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate token"})
		return
	}

	h.logger.Info("Token generated", zap.String("email", req.Email))

	c.JSON(http.StatusOK, GenerateTokenResponse{
		Token:     token,
		ExpiresIn: h.jwtConfig.TokenExpiration.String(),
		Email:     req.Email,
	})
}

// VerifyToken echoes the identity set by JWTAuthMiddleware.
func (h *AuthTokenHandler) VerifyToken(c *gin.Context) {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":       middleware.GetUserIDFromContext(c),
		"email":         email,
		"authenticated": true,
	})
}
