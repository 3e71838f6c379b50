package engine

import (
	"testing"

	"github.com/paintmyrock/crazyfun/internal/game"
)

func TestCalculateDamageScenario(t *testing.T) {
	attacker := creature("Pyro", [2]game.ElementType{game.Fire, game.Fire}, game.FusionStats{HitPoints: 80, Attack: 60, Defense: 30, Speed: 50}, ember)
	defender := creature("Fern", [2]game.ElementType{game.Nature, game.Earth}, game.FusionStats{HitPoints: 80, Attack: 30, Defense: 30, Speed: 50}, vine)

	// variance draw 0.5 -> 0.9 + 0.1 = 1.0; base = 60/30 * 40 * 1.5 * 0.5 = 60
	res := New(fixed(0.5)).CalculateDamage(attacker, defender, ember)
	if res.Damage != 60 {
		t.Fatalf("expected 60 damage, got %d", res.Damage)
	}
	if res.Effectiveness != EffectivenessSuper || res.Multiplier != 1.5 {
		t.Fatalf("expected super at 1.5, got %s at %v", res.Effectiveness, res.Multiplier)
	}
}

func TestCalculateDamageVarianceBounds(t *testing.T) {
	attacker := creature("A", [2]game.ElementType{game.Cosmic, game.Cosmic}, game.FusionStats{Attack: 100, Defense: 10}, splash)
	defender := creature("D", [2]game.ElementType{game.Fire, game.Air}, game.FusionStats{Attack: 10, Defense: 50}, vine)
	// splash vs fire/air = 1.5 * 1.0; base = 2 * 45 * 1.5 * 0.5 = 67.5
	low := New(fixed(0)).CalculateDamage(attacker, defender, splash)
	high := New(fixed(0.9999999)).CalculateDamage(attacker, defender, splash)
	if low.Damage != 61 { // 67.5 * 0.9 = 60.75
		t.Fatalf("expected low roll 61, got %d", low.Damage)
	}
	if high.Damage != 74 { // 67.5 * 1.1 = 74.25
		t.Fatalf("expected high roll 74, got %d", high.Damage)
	}
}

func TestCalculateDamageMinimumIsOne(t *testing.T) {
	weakling := creature("Wisp", [2]game.ElementType{game.Water, game.Water}, game.FusionStats{Attack: 1, Defense: 1}, game.Move{ID: "drip", Name: "Drip", Type: game.Water, Power: 1})
	wall := creature("Wall", [2]game.ElementType{game.Earth, game.Electric}, game.FusionStats{Attack: 1, Defense: 999}, vine)

	res := New(fixed(0)).CalculateDamage(weakling, wall, weakling.Moves[0])
	if res.Multiplier != 0.5625 {
		t.Fatalf("expected minimum multiplier 0.5625, got %v", res.Multiplier)
	}
	if res.Damage != 1 {
		t.Fatalf("expected damage floored at 1, got %d", res.Damage)
	}
	if res.Effectiveness != EffectivenessWeak {
		t.Fatalf("expected weak, got %s", res.Effectiveness)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		mult float64
		want Effectiveness
	}{
		{0.5625, EffectivenessWeak},
		{0.75, EffectivenessWeak},
		{0.9, EffectivenessNormal},
		{1.0, EffectivenessNormal},
		{1.125, EffectivenessNormal},
		{1.2, EffectivenessNormal},
		{1.5, EffectivenessSuper},
		{2.25, EffectivenessSuper},
	}
	for _, tc := range cases {
		if got := classify(tc.mult); got != tc.want {
			t.Errorf("classify(%v) = %s, want %s", tc.mult, got, tc.want)
		}
	}
}

func TestCalculateDamageEffectivenessFromTypes(t *testing.T) {
	e := New(fixed(0.5))
	attacker := creature("A", [2]game.ElementType{game.Fire, game.Fire}, game.FusionStats{Attack: 50, Defense: 50}, ember)
	neutral := creature("N", [2]game.ElementType{game.Fire, game.Earth}, game.FusionStats{Attack: 50, Defense: 50}, ember)
	superDef := creature("S", [2]game.ElementType{game.Air, game.Earth}, game.FusionStats{Attack: 50, Defense: 50}, ember)
	weakDef := creature("W", [2]game.ElementType{game.Water, game.Cosmic}, game.FusionStats{Attack: 50, Defense: 50}, ember)

	if got := e.CalculateDamage(attacker, neutral, ember).Effectiveness; got != EffectivenessNormal {
		t.Errorf("1.0 multiplier: got %s", got)
	}
	if got := e.CalculateDamage(attacker, superDef, ember).Effectiveness; got != EffectivenessSuper {
		t.Errorf("1.5 multiplier: got %s", got)
	}
	if got := e.CalculateDamage(attacker, weakDef, ember).Effectiveness; got != EffectivenessWeak {
		t.Errorf("0.75 multiplier: got %s", got)
	}
}
