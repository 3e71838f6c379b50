package engine

import "math"

const (
	winXP         = 50
	lossXP        = 10
	xpPerOppLevel = 5
	xpPerLevelSq  = 100
)

// XPReward is the experience granted after a battle: 50 for a win or 10 for
// a loss, plus 5 per opponent level. Opponent levels below 1 count as 1, so
// an unset or zero level still yields 55 for a win and 15 for a loss rather
// than the bare 50 and 10.
func XPReward(won bool, opponentLevel int) int {
	if opponentLevel < 1 {
		opponentLevel = 1
	}
	base := lossXP
	if won {
		base = winXP
	}
	return base + opponentLevel*xpPerOppLevel
}

// Level converts total experience to a trainer level: floor(sqrt(xp/100)) + 1.
func Level(xp int) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/xpPerLevelSq))) + 1
}

// XPForNextLevel is the total experience at which level+1 starts, so
// Level(XPForNextLevel(l)) == l+1.
func XPForNextLevel(level int) int {
	return level * level * xpPerLevelSq
}

// LevelProgress is the trainer's xp as a percentage of XPForNextLevel(level),
// capped at 100.
func LevelProgress(xp, level int) float64 {
	next := XPForNextLevel(level)
	if next <= 0 {
		return 0
	}
	return math.Min(100, float64(xp)/float64(next)*100)
}
