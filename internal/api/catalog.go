package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paintmyrock/crazyfun/internal/game"
)

// ListEntities returns every base entity in catalog order.
func (h *Handler) ListEntities(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.All())
}

// TypeChart returns the attack/defense multiplier table.
func (h *Handler) TypeChart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"types": game.ElementTypes,
		"chart": game.TypeChart(),
	})
}
