package recommendation

import (
	"fmt"
	"net/http"
	"strconv"

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

// parseMinSimilarity reads the optional minSimilarity query parameter. Absent
// means the adaptive threshold.
func parseMinSimilarity(c *gin.Context) (*float64, error) {
	raw, ok := c.GetQuery("minSimilarity")
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		return nil, fmt.Errorf("minSimilarity must be a number between 0 and 1: %w", models.ErrBadRequest)
	}
	return &v, nil
}

func (h *Handler) identity(c *gin.Context) (string, bool) {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		h.RespondError(c, models.ErrUnauthenticated)
	}
	return email, ok
}

func (h *Handler) respond(c *gin.Context, result []models.RecommendedWalkway, err error) {
	if err != nil {
		h.Logger.Error("Recommendation failed", zap.String("path", c.FullPath()), zap.Error(err))
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Collaborative(c *gin.Context) {
	email, ok := h.identity(c)
	if !ok {
		return
	}
	minSimilarity, err := parseMinSimilarity(c)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	result, err := h.service.RecommendCollaborative(c.Request.Context(), email, minSimilarity)
	h.respond(c, result, err)
}

func (h *Handler) ContentBased(c *gin.Context) {
	email, ok := h.identity(c)
	if !ok {
		return
	}

	result, err := h.service.RecommendContentBased(c.Request.Context(), email)
	h.respond(c, result, err)
}

func (h *Handler) Hybrid(c *gin.Context) {
	email, ok := h.identity(c)
	if !ok {
		return
	}

	result, err := h.service.RecommendHybrid(c.Request.Context(), email)
	h.respond(c, result, err)
}

func (h *Handler) SimilarUsers(c *gin.Context) {
	email, ok := h.identity(c)
	if !ok {
		return
	}
	minSimilarity, err := parseMinSimilarity(c)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	similar, err := h.service.FindSimilarUsers(c.Request.Context(), email, minSimilarity)
	if err != nil {
		h.Logger.Error("Similar users lookup failed", zap.Error(err))
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, similar)
}
