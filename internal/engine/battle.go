// Package engine simulates turn-based battles between two fusions and
// computes post-battle rewards.
//
// Every operation returns a new BattleState; inputs are never mutated.
// Callers must thread the returned state strictly sequentially into the next
// call for the same encounter.
package engine

import (
	"errors"
	"strconv"

	"github.com/paintmyrock/crazyfun/internal/game"
)

var (
	ErrBattleNotActive = errors.New("battle is not in progress")
	ErrNotYourTurn     = errors.New("it is not this side's turn")
	ErrUnknownMove     = errors.New("move does not belong to the attacking fusion")
)

// Engine runs battles using an injected randomness Source.
type Engine struct {
	src Source
}

// New returns an Engine drawing from src. A nil src uses the process-wide
// math/rand generator.
func New(src Source) *Engine {
	if src == nil {
		src = globalSource{}
	}
	return &Engine{src: src}
}

// DetermineFirstTurn reports whether the player acts first. The faster fusion
// goes first; an exact speed tie is a coin flip.
func (e *Engine) DetermineFirstTurn(player, opponent game.FusionCreature) bool {
	if player.Stats.Speed == opponent.Stats.Speed {
		return e.src.Float64() > 0.5
	}
	return player.Stats.Speed > opponent.Stats.Speed
}

// Initialize starts a new encounter with both sides at full health.
func (e *Engine) Initialize(player, opponent game.FusionCreature) game.BattleState {
	playerFirst := e.DetermineFirstTurn(player, opponent)
	first := opponent.Name
	if playerFirst {
		first = player.Name
	}
	return game.BattleState{
		PlayerFusion:   player,
		OpponentFusion: opponent,
		PlayerHP:       player.Stats.HitPoints,
		OpponentHP:     opponent.Stats.HitPoints,
		Turn:           1,
		IsPlayerTurn:   playerFirst,
		BattleLog: []string{
			"Battle Start! " + player.Name + " vs " + opponent.Name + "!",
			first + " is faster and goes first!",
		},
		Status: game.StatusBattling,
	}
}

// ExecuteTurn applies exactly one attack and returns the next state.
//
// The state must be battling, isPlayerMove must match state.IsPlayerTurn and
// move.ID must name one of the attacker's moves; otherwise an error is
// returned and the state is left as is. IsPlayerTurn flips even on the turn that ends the
// battle, so callers must check Status before offering another turn.
func (e *Engine) ExecuteTurn(state game.BattleState, move game.Move, isPlayerMove bool) (game.BattleState, error) {
	if state.Status != game.StatusBattling {
		return state, ErrBattleNotActive
	}
	if isPlayerMove != state.IsPlayerTurn {
		return state, ErrNotYourTurn
	}
	attacker, defender := state.OpponentFusion, state.PlayerFusion
	if isPlayerMove {
		attacker, defender = state.PlayerFusion, state.OpponentFusion
	}
	// Only the id is taken from the caller; power and type come from the
	// attacker's own move.
	own, ok := attacker.MoveByID(move.ID)
	if !ok {
		return state, ErrUnknownMove
	}

	res := e.CalculateDamage(attacker, defender, own)

	msg := attacker.Name + " used " + own.Name + "!"
	switch res.Effectiveness {
	case EffectivenessSuper:
		msg += " It's super effective! 💥"
	case EffectivenessWeak:
		msg += " It's not very effective... 😕"
	}
	msg += " " + strconv.Itoa(res.Damage) + " damage!"

	next := state
	next.BattleLog = make([]string, len(state.BattleLog), len(state.BattleLog)+2)
	copy(next.BattleLog, state.BattleLog)
	next.BattleLog = append(next.BattleLog, msg)

	if isPlayerMove {
		next.OpponentHP = max(0, state.OpponentHP-res.Damage)
		if next.OpponentHP == 0 {
			next.Status = game.StatusVictory
			next.BattleLog = append(next.BattleLog, state.OpponentFusion.Name+" fainted! You win! 🎉")
		}
	} else {
		next.PlayerHP = max(0, state.PlayerHP-res.Damage)
		if next.PlayerHP == 0 {
			next.Status = game.StatusDefeat
			next.BattleLog = append(next.BattleLog, state.PlayerFusion.Name+" fainted! You lose... 😢")
		}
	}
	next.Turn = state.Turn + 1
	next.IsPlayerTurn = !state.IsPlayerTurn
	return next, nil
}

// SelectAIMove picks one of the fusion's moves uniformly at random.
func (e *Engine) SelectAIMove(fusion game.FusionCreature) game.Move {
	i := int(e.src.Float64() * float64(len(fusion.Moves)))
	if i >= len(fusion.Moves) {
		i = len(fusion.Moves) - 1
	}
	return fusion.Moves[i]
}
