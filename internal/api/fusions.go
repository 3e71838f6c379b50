package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/service"
)

type FusionPayload struct {
	EntityA string `json:"entity_a" binding:"required"`
	EntityB string `json:"entity_b" binding:"required"`
}

// PreviewFusion derives a fusion without persisting anything.
func (h *Handler) PreviewFusion(c *gin.Context) {
	var req FusionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	f, err := service.PreviewFusion(h.registry, req.EntityA, req.EntityB)
	if err != nil {
		respondError(c, err, constants.ErrInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, f)
}

// DiscoverFusion derives a fusion and records it in the codex.
func (h *Handler) DiscoverFusion(c *gin.Context) {
	var req FusionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	entry, err := service.DiscoverFusion(h.repo, h.registry, req.EntityA, req.EntityB)
	if err != nil {
		respondError(c, err, constants.ErrFailedDiscoverFusion)
		return
	}
	respondRecord(c, http.StatusOK, entry)
}

func (h *Handler) ListCodex(c *gin.Context) {
	list, err := service.ListCodex(h.repo)
	if err != nil {
		respondError(c, err, constants.ErrFailedFetchCodex)
		return
	}
	respondRecord(c, http.StatusOK, list)
}
