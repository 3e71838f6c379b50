package fusion

import (
	"math"

	"github.com/paintmyrock/crazyfun/internal/game"
)

// BonusFactor is the flat boost a fusion gets over its parents' average.
const BonusFactor = 1.1

// Stats averages the parents' base stats and applies BonusFactor.
// SpecialPower averages both parents' attack and defense together.
func Stats(a, b game.BaseStats) game.FusionStats {
	avg := func(x, y int) int {
		return roundHalfUp(float64(x+y) / 2 * BonusFactor)
	}
	return game.FusionStats{
		HitPoints:    avg(a.HitPoints, b.HitPoints),
		Attack:       avg(a.Attack, b.Attack),
		Defense:      avg(a.Defense, b.Defense),
		Speed:        avg(a.Speed, b.Speed),
		SpecialPower: roundHalfUp(float64(a.Attack+b.Attack+a.Defense+b.Defense) / 4 * BonusFactor),
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
