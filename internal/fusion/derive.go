// Package fusion derives composite creatures from two base entities.
//
// Derivation is pure and deterministic: the same unordered pair of entities
// always yields an identical FusionCreature, whatever the argument order.
package fusion

import (
	"github.com/paintmyrock/crazyfun/internal/game"
	"github.com/paintmyrock/crazyfun/internal/keys"
)

// Derive fuses two distinct base entities. Fusing an entity with itself is
// rejected by callers; Derive does not define a result for it.
func Derive(entityA, entityB game.BaseEntity) game.FusionCreature {
	first, second := entityA, entityB
	if entityB.ID < entityA.ID {
		first, second = entityB, entityA
	}
	key := keys.FusionKey(first.ID, second.ID)

	return game.FusionCreature{
		FusionKey:   key,
		Name:        Name(first.Name, second.Name),
		Description: Description(key, first.Name, second.Name),
		ImageEmoji:  first.ImageEmoji + second.ImageEmoji,
		Types:       [2]game.ElementType{first.ElementalType, second.ElementalType},
		Stats:       Stats(first.BaseStats, second.BaseStats),
		Moves:       [2]game.Move{first.Move, second.Move},
		ParentIDs:   [2]string{first.ID, second.ID},
	}
}
