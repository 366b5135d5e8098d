package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/domain"
	"github.com/FACorreiaa/passadia/internal/app/middleware"
	"github.com/FACorreiaa/passadia/internal/app/models"
)

type Handler struct {
	*domain.BaseHandler
	service UserService
}

func NewHandler(base *domain.BaseHandler, service UserService) *Handler {
	return &Handler{
		BaseHandler: base,
		service:     service,
	}
}

// GetProfile returns the authenticated walker's document.
func (h *Handler) GetProfile(c *gin.Context) {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		h.RespondError(c, models.ErrUnauthenticated)
		return
	}

	profile, err := h.service.GetUserProfile(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("Failed to fetch user profile", zap.String("email", email), zap.Error(err))
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
