package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/service"
)

type CreateTrainerPayload struct {
	Username    string `json:"username"`
	AvatarEmoji string `json:"avatar_emoji"`
}

type AddFusionPayload struct {
	EntityA  string `json:"entity_a" binding:"required"`
	EntityB  string `json:"entity_b" binding:"required"`
	Nickname string `json:"nickname"`
}

// CreateTrainer registers a new trainer profile.
func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	t, err := service.CreateTrainer(h.repo, req.Username, req.AvatarEmoji)
	if err != nil {
		respondError(c, err, constants.ErrFailedCreateTrainer)
		return
	}
	respondRecord(c, http.StatusCreated, t)
}

// GetTrainer returns the trainer's profile summary.
func (h *Handler) GetTrainer(c *gin.Context) {
	s, err := service.Summary(h.repo, c.Param("trainerID"))
	if err != nil {
		respondError(c, err, constants.ErrFailedFetchTrainer)
		return
	}
	respondRecord(c, http.StatusOK, s)
}

// DeleteTrainer clears a trainer profile and its collection.
func (h *Handler) DeleteTrainer(c *gin.Context) {
	if err := service.DeleteTrainer(h.repo, c.Param("trainerID")); err != nil {
		respondError(c, err, constants.ErrFailedDeleteTrainer)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCollection(c *gin.Context) {
	list, err := service.ListCollection(h.repo, c.Param("trainerID"))
	if err != nil {
		respondError(c, err, constants.ErrFailedFetchCollection)
		return
	}
	respondRecord(c, http.StatusOK, list)
}

// AddToCollection saves a fusion for the trainer. It answers 201 when the
// fusion is new and 200 with the existing entry otherwise.
func (h *Handler) AddToCollection(c *gin.Context) {
	var req AddFusionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	saved, created, err := service.AddToCollection(h.repo, h.registry, c.Param("trainerID"), req.EntityA, req.EntityB, req.Nickname)
	if err != nil {
		respondError(c, err, constants.ErrFailedSaveCollection)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondRecord(c, status, saved)
}

func (h *Handler) RemoveFromCollection(c *gin.Context) {
	if err := service.RemoveFromCollection(h.repo, c.Param("trainerID"), c.Param("fusionKey")); err != nil {
		respondError(c, err, constants.ErrFailedRemoveFusion)
		return
	}
	c.Status(http.StatusNoContent)
}
