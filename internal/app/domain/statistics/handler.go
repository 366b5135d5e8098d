package statistics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/passadia/internal/app/domain"
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

func (h *Handler) respond(c *gin.Context, ranked []models.RankedWalkway, err error) {
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

func (h *Handler) TopLiked(c *gin.Context) {
	ranked, err := h.service.TopLiked(c.Request.Context())
	h.respond(c, ranked, err)
}

func (h *Handler) TopExplored(c *gin.Context) {
	ranked, err := h.service.TopExplored(c.Request.Context())
	h.respond(c, ranked, err)
}

func (h *Handler) TopWalkways(c *gin.Context) {
	ranked, err := h.service.TopWalkways(c.Request.Context())
	h.respond(c, ranked, err)
}
