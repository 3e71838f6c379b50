package game

// ElementType is the closed set of elemental typings.
type ElementType string

const (
	Fire     ElementType = "fire"
	Water    ElementType = "water"
	Earth    ElementType = "earth"
	Air      ElementType = "air"
	Electric ElementType = "electric"
	Nature   ElementType = "nature"
	Metal    ElementType = "metal"
	Cosmic   ElementType = "cosmic"
)

// ElementTypes lists every element type in chart order.
var ElementTypes = []ElementType{Fire, Water, Earth, Air, Electric, Nature, Metal, Cosmic}

// Valid reports whether t is one of the eight element types.
func (t ElementType) Valid() bool {
	_, ok := typeChart[t]
	return ok
}

// typeChart maps attack type -> defense type -> damage multiplier. It is not
// symmetric. Read it only through Effectiveness.
var typeChart = map[ElementType]map[ElementType]float64{
	Fire: {
		Fire: 1.0, Water: 0.75, Earth: 1.0, Air: 1.5,
		Electric: 1.0, Nature: 1.5, Metal: 1.5, Cosmic: 1.0,
	},
	Water: {
		Fire: 1.5, Water: 1.0, Earth: 0.75, Air: 1.0,
		Electric: 0.75, Nature: 1.0, Metal: 1.0, Cosmic: 1.0,
	},
	Earth: {
		Fire: 1.0, Water: 1.5, Earth: 1.0, Air: 0.75,
		Electric: 1.5, Nature: 0.75, Metal: 1.5, Cosmic: 1.0,
	},
	Air: {
		Fire: 0.75, Water: 1.0, Earth: 1.5, Air: 1.0,
		Electric: 0.75, Nature: 1.0, Metal: 1.0, Cosmic: 1.5,
	},
	Electric: {
		Fire: 1.0, Water: 1.5, Earth: 0.75, Air: 1.5,
		Electric: 1.0, Nature: 1.0, Metal: 1.5, Cosmic: 0.75,
	},
	Nature: {
		Fire: 0.75, Water: 1.5, Earth: 1.5, Air: 1.0,
		Electric: 1.0, Nature: 1.0, Metal: 0.75, Cosmic: 1.0,
	},
	Metal: {
		Fire: 0.75, Water: 1.0, Earth: 0.75, Air: 1.0,
		Electric: 0.75, Nature: 1.5, Metal: 1.0, Cosmic: 1.5,
	},
	Cosmic: {
		Fire: 1.0, Water: 1.0, Earth: 1.0, Air: 0.75,
		Electric: 1.5, Nature: 1.0, Metal: 0.75, Cosmic: 1.5,
	},
}

// Effectiveness returns the chart multiplier of an attack type against a single
// defense type. Unknown types are neutral.
func Effectiveness(attack, defense ElementType) float64 {
	row, ok := typeChart[attack]
	if !ok {
		return 1.0
	}
	m, ok := row[defense]
	if !ok {
		return 1.0
	}
	return m
}

// TypeMultiplier multiplies the chart entries for every defending type, so a
// dual-typed defender ranges from 0.5625 to 2.25.
func TypeMultiplier(attack ElementType, defense ...ElementType) float64 {
	m := 1.0
	for _, d := range defense {
		m *= Effectiveness(attack, d)
	}
	return m
}

// TypeChart returns a copy of the full chart, for clients that render it.
func TypeChart() map[ElementType]map[ElementType]float64 {
	out := make(map[ElementType]map[ElementType]float64, len(typeChart))
	for a, row := range typeChart {
		r := make(map[ElementType]float64, len(row))
		for d, m := range row {
			r[d] = m
		}
		out[a] = r
	}
	return out
}
