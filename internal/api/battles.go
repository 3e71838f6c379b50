package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/game"
)

type StartBattlePayload struct {
	TrainerID       string              `json:"trainer_id" binding:"required"`
	PlayerFusionKey string              `json:"player_fusion_key" binding:"required"`
	Opponent        game.FusionCreature `json:"opponent"`
}

type TurnPayload struct {
	State  game.BattleState `json:"state"`
	MoveID string           `json:"move_id"`
}

type FinishBattlePayload struct {
	TrainerID     string           `json:"trainer_id" binding:"required"`
	State         game.BattleState `json:"state"`
	OpponentLevel int              `json:"opponent_level"`
}

// ListOpponents returns random arena opponents. The optional ?count=N picks
// how many.
func (h *Handler) ListOpponents(c *gin.Context) {
	count := 0
	if s := c.Query("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidOpponentCount})
			return
		}
		count = n
	}
	opps, err := h.arena.Opponents(count)
	if err != nil {
		respondError(c, err, constants.ErrInvalidOpponentCount)
		return
	}
	c.JSON(http.StatusOK, opps)
}

// StartBattle returns the initial state of a battle. The client sends it
// back on every following call.
func (h *Handler) StartBattle(c *gin.Context) {
	var req StartBattlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	state, err := h.arena.StartBattle(c.Request.Context(), h.repo, req.TrainerID, req.PlayerFusionKey, req.Opponent)
	if err != nil {
		respondError(c, err, constants.ErrInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PlayTurn applies the player's move to the posted state.
func (h *Handler) PlayTurn(c *gin.Context) {
	var req TurnPayload
	if err := c.ShouldBindJSON(&req); err != nil || req.MoveID == "" {
		badRequest(c)
		return
	}
	state, err := h.arena.PlayTurn(c.Request.Context(), req.State, req.MoveID)
	if err != nil {
		respondError(c, err, constants.ErrInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, state)
}

// OpponentTurn lets the AI act on the posted state.
func (h *Handler) OpponentTurn(c *gin.Context) {
	var req TurnPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	state, err := h.arena.OpponentTurn(c.Request.Context(), req.State)
	if err != nil {
		respondError(c, err, constants.ErrInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, state)
}

// FinishBattle awards experience for a finished battle.
func (h *Handler) FinishBattle(c *gin.Context) {
	var req FinishBattlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	res, err := h.arena.FinishBattle(c.Request.Context(), h.repo, req.TrainerID, req.State, req.OpponentLevel)
	if err != nil {
		respondError(c, err, constants.ErrFailedFinishBattle)
		return
	}
	respondRecord(c, http.StatusOK, res)
}
