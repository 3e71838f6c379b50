package engine

import (
	"math"

	"github.com/paintmyrock/crazyfun/internal/game"
)

// Effectiveness is the cosmetic tag attached to a hit; it only changes the
// battle log phrase.
type Effectiveness string

const (
	EffectivenessSuper  Effectiveness = "super"
	EffectivenessNormal Effectiveness = "normal"
	EffectivenessWeak   Effectiveness = "weak"
)

const (
	damageScale  = 0.5
	varianceLow  = 0.9
	varianceSpan = 0.2
	superAbove   = 1.2
	weakBelow    = 0.9
)

// DamageResult is the outcome of CalculateDamage.
type DamageResult struct {
	Damage        int           `json:"damage"`
	Effectiveness Effectiveness `json:"effectiveness"`
	Multiplier    float64       `json:"multiplier"`
}

// CalculateDamage computes one hit against the defender's two types, with a
// uniform variance in [0.9, 1.1]. Damage is never below 1.
func (e *Engine) CalculateDamage(attacker, defender game.FusionCreature, move game.Move) DamageResult {
	variance := varianceLow + e.src.Float64()*varianceSpan
	return damageWithVariance(attacker, defender, move, variance)
}

func damageWithVariance(attacker, defender game.FusionCreature, move game.Move, variance float64) DamageResult {
	mult := game.TypeMultiplier(move.Type, defender.Types[:]...)
	def := max(defender.Stats.Defense, 1)
	base := float64(attacker.Stats.Attack) / float64(def) * float64(move.Power) * mult * damageScale
	dmg := int(math.Floor(base*variance + 0.5))
	if dmg < 1 {
		dmg = 1
	}
	return DamageResult{Damage: dmg, Effectiveness: classify(mult), Multiplier: mult}
}

func classify(mult float64) Effectiveness {
	switch {
	case mult > superAbove:
		return EffectivenessSuper
	case mult < weakBelow:
		return EffectivenessWeak
	default:
		return EffectivenessNormal
	}
}
