package walkway

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
	service Service
}

func NewHandler(base *domain.BaseHandler, service Service) *Handler {
	return &Handler{
		BaseHandler: base,
		service:     service,
	}
}

// CommentRequest is the body of a comment submission.
type CommentRequest struct {
	Experience string `json:"experience" binding:"required"`
}

func (h *Handler) ListWalkways(c *gin.Context) {
	walkways, err := h.service.List(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, walkways)
}

func (h *Handler) GetWalkway(c *gin.Context) {
	w, err := h.service.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *Handler) AddComment(c *gin.Context) {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		h.RespondError(c, models.ErrUnauthenticated)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid comment request", zap.Error(err))
		h.RespondError(c, models.ErrBadRequest)
		return
	}

	w, err := h.service.AddComment(c.Request.Context(), email, c.Param("key"), req.Experience)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}
