package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/paintmyrock/crazyfun/internal/game"
)

// seqSource replays a fixed sequence of draws, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func fixed(vals ...float64) *seqSource { return &seqSource{vals: vals} }

func creature(name string, types [2]game.ElementType, stats game.FusionStats, moves ...game.Move) game.FusionCreature {
	f := game.FusionCreature{FusionKey: name, Name: name, Types: types, Stats: stats}
	copy(f.Moves[:], moves)
	return f
}

var (
	ember  = game.Move{ID: "ember", Name: "Ember", Type: game.Fire, Power: 40}
	vine   = game.Move{ID: "vine", Name: "Vine Whip", Type: game.Nature, Power: 35}
	spark  = game.Move{ID: "spark", Name: "Spark", Type: game.Electric, Power: 30}
	splash = game.Move{ID: "splash", Name: "Splash", Type: game.Water, Power: 45}

	blaze = creature("Blazecat", [2]game.ElementType{game.Fire, game.Electric},
		game.FusionStats{HitPoints: 90, Attack: 60, Defense: 40, Speed: 70, SpecialPower: 55}, ember, spark)
	moss = creature("Mosslamp", [2]game.ElementType{game.Nature, game.Water},
		game.FusionStats{HitPoints: 110, Attack: 45, Defense: 50, Speed: 40, SpecialPower: 52}, vine, splash)
)

func TestInitializeFasterGoesFirst(t *testing.T) {
	e := New(fixed(0.5))
	st := e.Initialize(moss, blaze)
	if st.IsPlayerTurn {
		t.Fatalf("expected the faster opponent to act first")
	}
	if st.PlayerHP != moss.Stats.HitPoints || st.OpponentHP != blaze.Stats.HitPoints {
		t.Fatalf("expected full hp, got %d/%d", st.PlayerHP, st.OpponentHP)
	}
	if st.Turn != 1 || st.Status != game.StatusBattling {
		t.Fatalf("unexpected turn/status: %d %s", st.Turn, st.Status)
	}
	want := []string{"Battle Start! Mosslamp vs Blazecat!", "Blazecat is faster and goes first!"}
	if !reflect.DeepEqual(st.BattleLog, want) {
		t.Fatalf("unexpected log %q", st.BattleLog)
	}

	if !New(fixed(0.5)).Initialize(blaze, moss).IsPlayerTurn {
		t.Fatalf("expected the faster player to act first")
	}
}

func TestDetermineFirstTurnTieIsCoinFlip(t *testing.T) {
	twin := blaze
	twin.Name = "Twin"
	if !New(fixed(0.9)).DetermineFirstTurn(blaze, twin) {
		t.Fatalf("draw above 0.5 should give the player the first turn")
	}
	if New(fixed(0.1)).DetermineFirstTurn(blaze, twin) {
		t.Fatalf("draw below 0.5 should give the opponent the first turn")
	}
}

func TestExecuteTurnPlayerHit(t *testing.T) {
	e := New(fixed(0.5))
	st := e.Initialize(blaze, moss)
	before := st
	beforeLog := append([]string(nil), st.BattleLog...)

	next, err := e.ExecuteTurn(st, ember, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 60/50 * 40 * (1.5 * 0.75) * 0.5 = 27
	if next.OpponentHP != moss.Stats.HitPoints-27 {
		t.Fatalf("expected opponent hp %d, got %d", moss.Stats.HitPoints-27, next.OpponentHP)
	}
	if next.PlayerHP != before.PlayerHP {
		t.Fatalf("attacker hp must not change")
	}
	if next.Turn != 2 || next.IsPlayerTurn {
		t.Fatalf("expected turn 2 with opponent to move, got %d %v", next.Turn, next.IsPlayerTurn)
	}
	if got := next.BattleLog[len(next.BattleLog)-1]; got != "Blazecat used Ember! 27 damage!" {
		t.Fatalf("unexpected log line %q", got)
	}
	if !reflect.DeepEqual(st.BattleLog, beforeLog) || st.OpponentHP != before.OpponentHP || st.Turn != 1 {
		t.Fatalf("input state was mutated")
	}
}

func TestExecuteTurnEffectivenessPhrases(t *testing.T) {
	e := New(fixed(0.5))
	st := e.Initialize(moss, blaze)

	// opponent moves first: spark vs nature/water = 1.0 * 1.5 -> super
	st, err := e.ExecuteTurn(st, spark, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := st.BattleLog[len(st.BattleLog)-1]; got != "Blazecat used Spark! It's super effective! 💥 27 damage!" {
		t.Fatalf("unexpected log line %q", got)
	}

	// vine vs fire/electric = 0.75 * 1.0 -> weak
	st, err = e.ExecuteTurn(st, vine, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := st.BattleLog[len(st.BattleLog)-1]; got != "Mosslamp used Vine Whip! It's not very effective... 😕 15 damage!" {
		t.Fatalf("unexpected log line %q", got)
	}
}

func TestExecuteTurnVictoryFloorsHP(t *testing.T) {
	e := New(fixed(0.5))
	st := e.Initialize(blaze, moss)
	st.OpponentHP = 5

	next, err := e.ExecuteTurn(st, ember, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.OpponentHP != 0 {
		t.Fatalf("expected hp floored at 0, got %d", next.OpponentHP)
	}
	if next.Status != game.StatusVictory {
		t.Fatalf("expected victory, got %s", next.Status)
	}
	if next.IsPlayerTurn {
		t.Fatalf("turn ownership must flip even on the final turn")
	}
	if got := next.BattleLog[len(next.BattleLog)-1]; got != "Mosslamp fainted! You win! 🎉" {
		t.Fatalf("unexpected final log line %q", got)
	}
	if len(next.BattleLog) != len(st.BattleLog)+2 {
		t.Fatalf("expected attack and faint lines, got %d new lines", len(next.BattleLog)-len(st.BattleLog))
	}
}

func TestExecuteTurnDefeat(t *testing.T) {
	e := New(fixed(0.5))
	st := e.Initialize(moss, blaze)
	st.PlayerHP = 1

	next, err := e.ExecuteTurn(st, ember, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Status != game.StatusDefeat || next.PlayerHP != 0 {
		t.Fatalf("expected defeat at 0 hp, got %s %d", next.Status, next.PlayerHP)
	}
	if got := next.BattleLog[len(next.BattleLog)-1]; got != "Mosslamp fainted! You lose... 😢" {
		t.Fatalf("unexpected final log line %q", got)
	}
}

func TestExecuteTurnPreconditions(t *testing.T) {
	e := New(fixed(0.5))
	st := e.Initialize(blaze, moss)

	if _, err := e.ExecuteTurn(st, vine, false); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
	if _, err := e.ExecuteTurn(st, vine, true); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("expected ErrUnknownMove, got %v", err)
	}

	done := st
	done.Status = game.StatusVictory
	if _, err := e.ExecuteTurn(done, ember, true); !errors.Is(err, ErrBattleNotActive) {
		t.Fatalf("expected ErrBattleNotActive, got %v", err)
	}
	selecting := st
	selecting.Status = game.StatusSelecting
	if _, err := e.ExecuteTurn(selecting, ember, true); !errors.Is(err, ErrBattleNotActive) {
		t.Fatalf("expected ErrBattleNotActive for selecting, got %v", err)
	}
}

func TestBattleAlternatesUntilTerminal(t *testing.T) {
	e := New(fixed(0.13, 0.77, 0.42, 0.99, 0.0, 0.58))
	st := e.Initialize(blaze, moss)

	for i := 0; st.Status == game.StatusBattling; i++ {
		if i > 500 {
			t.Fatalf("battle did not terminate")
		}
		attacker := st.OpponentFusion
		if st.IsPlayerTurn {
			attacker = st.PlayerFusion
		}
		wasPlayer := st.IsPlayerTurn
		next, err := e.ExecuteTurn(st, e.SelectAIMove(attacker), st.IsPlayerTurn)
		if err != nil {
			t.Fatalf("turn %d: %v", st.Turn, err)
		}
		if next.IsPlayerTurn == wasPlayer {
			t.Fatalf("turn %d: ownership did not alternate", st.Turn)
		}
		if next.PlayerHP < 0 || next.OpponentHP < 0 {
			t.Fatalf("turn %d: negative hp %d/%d", st.Turn, next.PlayerHP, next.OpponentHP)
		}
		if next.Turn != st.Turn+1 {
			t.Fatalf("turn counter did not advance")
		}
		st = next
	}

	if !st.Status.Terminal() {
		t.Fatalf("expected terminal status, got %s", st.Status)
	}
	if (st.Status == game.StatusVictory) != (st.OpponentHP == 0) {
		t.Fatalf("status %s inconsistent with hp %d/%d", st.Status, st.PlayerHP, st.OpponentHP)
	}
	after, err := e.ExecuteTurn(st, ember, st.IsPlayerTurn)
	if !errors.Is(err, ErrBattleNotActive) {
		t.Fatalf("expected terminal state to be absorbing, got %v", err)
	}
	if after.PlayerHP != st.PlayerHP || after.OpponentHP != st.OpponentHP {
		t.Fatalf("hp changed after the battle ended")
	}
}

func TestSelectAIMove(t *testing.T) {
	cases := []struct {
		draw float64
		want string
	}{
		{0.0, "ember"},
		{0.49, "ember"},
		{0.5, "spark"},
		{0.999, "spark"},
		{1.0, "spark"},
	}
	for _, tc := range cases {
		if got := New(fixed(tc.draw)).SelectAIMove(blaze); got.ID != tc.want {
			t.Errorf("draw %v: got %s, want %s", tc.draw, got.ID, tc.want)
		}
	}
}

func TestNewWithNilSourceUsesGlobal(t *testing.T) {
	e := New(nil)
	m := e.SelectAIMove(blaze)
	if m.ID != "ember" && m.ID != "spark" {
		t.Fatalf("unexpected move %q", m.ID)
	}
}

func TestExecuteTurnUsesAttackersOwnMove(t *testing.T) {
	e := New(fixed(0.5))
	st := e.Initialize(blaze, moss)

	forged := ember
	forged.Power = 100000
	forged.Type = game.Cosmic
	forged.Name = "Meteor"
	next, err := e.ExecuteTurn(st, forged, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.OpponentHP != moss.Stats.HitPoints-27 {
		t.Fatalf("expected the stored ember to deal 27, opponent hp %d", next.OpponentHP)
	}
	if next.Status != game.StatusBattling {
		t.Fatalf("expected battle to continue, got %s", next.Status)
	}
	if got := next.BattleLog[len(next.BattleLog)-1]; got != "Blazecat used Ember! 27 damage!" {
		t.Fatalf("unexpected log line %q", got)
	}
}
