// Package catalog holds the read-only list of base entities that can be fused.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/paintmyrock/crazyfun/internal/game"
	"github.com/paintmyrock/crazyfun/internal/keys"
)

//go:embed entities.json
var defaultEntities []byte

// Parse decodes a JSON array of base entities.
func Parse(b []byte) ([]game.BaseEntity, error) {
	var out []game.BaseEntity
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("failed to parse entity list: %w", err)
	}
	return out, nil
}

// Default returns the embedded entity list.
func Default() ([]game.BaseEntity, error) {
	return Parse(defaultEntities)
}

// Validate checks an entity list before it is served to the fusion lab:
// unique ids that do not contain the fusion key separator, known element types
// and categories, and strictly positive stats and move power.
func Validate(entities []game.BaseEntity) error {
	if len(entities) < 2 {
		return errors.New("entity list needs at least two entities")
	}
	ids := make(map[string]struct{}, len(entities))
	moveIDs := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		if strings.TrimSpace(e.ID) == "" {
			return fmt.Errorf("entity %q is missing 'id'", e.Name)
		}
		if strings.Contains(e.ID, keys.Separator) {
			return fmt.Errorf("entity id %q must not contain %q", e.ID, keys.Separator)
		}
		if _, dup := ids[e.ID]; dup {
			return fmt.Errorf("duplicate entity id '%s'", e.ID)
		}
		ids[e.ID] = struct{}{}
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("entity '%s' is missing 'name'", e.ID)
		}
		if !e.Category.Valid() {
			return fmt.Errorf("entity '%s' has unknown category %q", e.ID, e.Category)
		}
		if !e.ElementalType.Valid() {
			return fmt.Errorf("entity '%s' has unknown elemental type %q", e.ID, e.ElementalType)
		}
		s := e.BaseStats
		if s.HitPoints <= 0 || s.Attack <= 0 || s.Defense <= 0 || s.Speed <= 0 {
			return fmt.Errorf("entity '%s' must have positive hp, attack, defense and speed", e.ID)
		}
		if strings.TrimSpace(e.Move.ID) == "" || strings.TrimSpace(e.Move.Name) == "" {
			return fmt.Errorf("entity '%s' move is missing 'id' or 'name'", e.ID)
		}
		if _, dup := moveIDs[e.Move.ID]; dup {
			return fmt.Errorf("duplicate move id '%s'", e.Move.ID)
		}
		moveIDs[e.Move.ID] = struct{}{}
		if !e.Move.Type.Valid() {
			return fmt.Errorf("entity '%s' move has unknown type %q", e.ID, e.Move.Type)
		}
		if e.Move.Power <= 0 {
			return fmt.Errorf("entity '%s' move must have positive power", e.ID)
		}
	}
	return nil
}
