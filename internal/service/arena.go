package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/paintmyrock/crazyfun/internal/catalog"
	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/engine"
	"github.com/paintmyrock/crazyfun/internal/fusion"
	"github.com/paintmyrock/crazyfun/internal/game"
	"github.com/paintmyrock/crazyfun/internal/logging"
	"github.com/paintmyrock/crazyfun/internal/storage"
	"github.com/paintmyrock/crazyfun/internal/telemetry"
)

// ArenaRepo is the subset of storage used when a battle starts and ends.
type ArenaRepo interface {
	GetTrainerByUUID(uuid string) (*game.Trainer, error)
	GetSavedFusion(trainerID uint, fusionKey string) (*game.SavedFusion, error)
	Transaction(fn func(tx storage.Repository) error) error
}

// BattleResult is returned once a finished battle has been recorded.
type BattleResult struct {
	Won               bool          `json:"won"`
	XPGained          int           `json:"xp_gained"`
	Trainer           *game.Trainer `json:"trainer"`
	LeveledUp         bool          `json:"leveled_up"`
	CollectionUpdated bool          `json:"collection_updated"`
}

type globalIntner struct{}

func (globalIntner) Intn(n int) int { return rand.Intn(n) }

// Arena generates opponents and drives battles. It keeps no per-battle
// state: every call receives the current BattleState and returns the next.
type Arena struct {
	reg           *catalog.Registry
	engine        *engine.Engine
	rng           catalog.Intner
	opponentCount int
	tracer        trace.Tracer
}

// NewArena builds an arena. A nil rng uses the process-wide math/rand
// generator; opponentCount <= 0 falls back to the default.
func NewArena(reg *catalog.Registry, eng *engine.Engine, rng catalog.Intner, opponentCount int) *Arena {
	if rng == nil {
		rng = globalIntner{}
	}
	if eng == nil {
		eng = engine.New(nil)
	}
	if opponentCount <= 0 {
		opponentCount = constants.DefaultOpponentCount
	}
	return &Arena{
		reg:           reg,
		engine:        eng,
		rng:           rng,
		opponentCount: opponentCount,
		tracer:        telemetry.Tracer("arena"),
	}
}

// OpponentCount is the number of opponents offered when none is requested.
func (a *Arena) OpponentCount() int { return a.opponentCount }

// Opponents returns count random fusions with pairwise distinct fusion keys.
// A count of zero uses the configured default; the result never exceeds the
// number of possible pairs.
func (a *Arena) Opponents(count int) ([]game.FusionCreature, error) {
	if count == 0 {
		count = a.opponentCount
	}
	if count < 1 || count > constants.MaxOpponentCount {
		return nil, ErrInvalidOpponentCount
	}
	if pairs := a.reg.PairCount(); count > pairs {
		count = pairs
	}

	out := make([]game.FusionCreature, 0, count)
	seen := make(map[string]struct{}, count)
	add := func(f game.FusionCreature) {
		if _, dup := seen[f.FusionKey]; dup {
			return
		}
		seen[f.FusionKey] = struct{}{}
		out = append(out, f)
	}

	for attempts := 0; len(out) < count && attempts < count*50; attempts++ {
		x, y := a.reg.RandomPair(a.rng)
		add(fusion.Derive(x, y))
	}
	// Very small catalogs can keep drawing duplicates; fill the rest in order.
	if len(out) < count {
		all := a.reg.All()
		for i := 0; i < len(all) && len(out) < count; i++ {
			for j := i + 1; j < len(all) && len(out) < count; j++ {
				add(fusion.Derive(all[i], all[j]))
			}
		}
	}
	return out, nil
}

// StartBattle pits a fusion from the trainer's collection against an arena
// opponent. The opponent is re-derived from its parent ids so clients cannot
// submit tampered stats.
func (a *Arena) StartBattle(ctx context.Context, repo ArenaRepo, trainerID, playerFusionKey string, opponent game.FusionCreature) (game.BattleState, error) {
	_, span := a.tracer.Start(ctx, "battle.start",
		trace.WithAttributes(
			attribute.String(constants.LogFieldTrainerID, trainerID),
			attribute.String(constants.LogFieldFusionKey, playerFusionKey),
		))
	defer span.End()

	t, err := GetTrainer(repo, trainerID)
	if err != nil {
		return game.BattleState{}, spanError(span, err)
	}
	saved, err := repo.GetSavedFusion(t.ID, playerFusionKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return game.BattleState{}, spanError(span, ErrFusionNotInCollection)
		}
		return game.BattleState{}, spanError(span, fmt.Errorf("get fusion: %w", err))
	}
	opp, err := PreviewFusion(a.reg, opponent.ParentIDs[0], opponent.ParentIDs[1])
	if err != nil {
		return game.BattleState{}, spanError(span, err)
	}

	state := a.engine.Initialize(saved.Fusion, opp)
	span.SetAttributes(
		attribute.String("opponent", opp.FusionKey),
		attribute.Bool("player_first", state.IsPlayerTurn),
	)
	return state, nil
}

// PlayTurn applies the player's chosen move.
func (a *Arena) PlayTurn(ctx context.Context, state game.BattleState, moveID string) (game.BattleState, error) {
	_, span := a.tracer.Start(ctx, "battle.turn",
		trace.WithAttributes(
			attribute.Bool("player", true),
			attribute.Int(constants.LogFieldTurn, state.Turn),
			attribute.String("move", moveID),
		))
	defer span.End()

	move, ok := state.PlayerFusion.MoveByID(moveID)
	if !ok {
		return state, spanError(span, engine.ErrUnknownMove)
	}
	return a.executeTurn(span, state, move, true)
}

// OpponentTurn lets the AI pick and apply a move.
func (a *Arena) OpponentTurn(ctx context.Context, state game.BattleState) (game.BattleState, error) {
	_, span := a.tracer.Start(ctx, "battle.turn",
		trace.WithAttributes(
			attribute.Bool("player", false),
			attribute.Int(constants.LogFieldTurn, state.Turn),
		))
	defer span.End()

	if state.Status != game.StatusBattling {
		return state, spanError(span, engine.ErrBattleNotActive)
	}
	if state.IsPlayerTurn {
		return state, spanError(span, engine.ErrNotYourTurn)
	}
	move := a.engine.SelectAIMove(state.OpponentFusion)
	span.SetAttributes(attribute.String("move", move.ID))
	return a.executeTurn(span, state, move, false)
}

func (a *Arena) executeTurn(span trace.Span, state game.BattleState, move game.Move, isPlayerMove bool) (game.BattleState, error) {
	next, err := a.engine.ExecuteTurn(state, move, isPlayerMove)
	if err != nil {
		return state, spanError(span, err)
	}
	span.SetAttributes(
		attribute.Int("player_hp", next.PlayerHP),
		attribute.Int("opponent_hp", next.OpponentHP),
		attribute.String(constants.LogFieldStatus, string(next.Status)),
	)
	return next, nil
}

// FinishBattle awards experience for a finished battle and records the win
// or loss on the player's fusion. A fusion that has since been removed from
// the collection only skips the record update.
func (a *Arena) FinishBattle(ctx context.Context, repo ArenaRepo, trainerID string, state game.BattleState, opponentLevel int) (*BattleResult, error) {
	_, span := a.tracer.Start(ctx, "battle.finish",
		trace.WithAttributes(
			attribute.String(constants.LogFieldTrainerID, trainerID),
			attribute.String(constants.LogFieldStatus, string(state.Status)),
		))
	defer span.End()

	if !state.Status.Terminal() {
		return nil, spanError(span, ErrBattleInProgress)
	}
	t, err := GetTrainer(repo, trainerID)
	if err != nil {
		return nil, spanError(span, err)
	}

	won := state.Status == game.StatusVictory
	reward := engine.XPReward(won, opponentLevel)
	prevLevel := t.Level

	// Experience and the fusion record are booked together or not at all.
	updated := false
	err = repo.Transaction(func(tx storage.Repository) error {
		var err error
		if t, err = AddXP(tx, trainerID, reward); err != nil {
			return err
		}
		switch err := RecordBattleResult(tx, trainerID, state.PlayerFusion.FusionKey, won); {
		case err == nil:
			updated = true
		case errors.Is(err, ErrFusionNotInCollection):
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return nil, spanError(span, err)
	}

	span.SetAttributes(
		attribute.Int(constants.LogFieldXP, reward),
		attribute.Int(constants.LogFieldLevel, t.Level),
	)
	logging.Info("battle finished", logging.Fields{
		constants.LogFieldTrainerID: trainerID,
		constants.LogFieldFusionKey: state.PlayerFusion.FusionKey,
		constants.LogFieldStatus:    state.Status,
		constants.LogFieldTurn:      state.Turn,
		constants.LogFieldXP:        reward,
		constants.LogFieldLevel:     t.Level,
	})

	return &BattleResult{
		Won:               won,
		XPGained:          reward,
		Trainer:           t,
		LeveledUp:         t.Level > prevLevel,
		CollectionUpdated: updated,
	}, nil
}

func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
