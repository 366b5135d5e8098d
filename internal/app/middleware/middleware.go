package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Define typed context keys
type contextKey string

const (
	UserEmailKey contextKey = "userEmail"
	UserIDKey    contextKey = "userID"
	RequestIDKey contextKey = "requestID"
)

const RequestIDHeader = "X-Request-ID"

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Writer.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		c.Next()
	}
}

// RequestIDMiddleware reuses an upstream X-Request-ID or generates a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Set(string(RequestIDKey), requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDKey, requestID))

		c.Next()
	}
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// SetIdentity stores the authenticated walker on both the gin and request contexts.
func SetIdentity(c *gin.Context, userID, email string) {
	c.Set(string(UserIDKey), userID)
	c.Set(string(UserEmailKey), email)

	ctx := context.WithValue(c.Request.Context(), UserEmailKey, email)
	ctx = context.WithValue(ctx, UserIDKey, userID)
	c.Request = c.Request.WithContext(ctx)
}

// EmailFromContext returns the email of the authenticated walker.
func EmailFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

// GetUserIDFromContext extracts just the user ID from context
func GetUserIDFromContext(c *gin.Context) string {
	if userID, exists := c.Get(string(UserIDKey)); exists {
		if idStr, ok := userID.(string); ok && idStr != "" {
			return idStr
		}
	}
	return "anonymous"
}
