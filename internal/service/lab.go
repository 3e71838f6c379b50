package service

import (
	"fmt"

	"github.com/paintmyrock/crazyfun/internal/catalog"
	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/dedupe"
	"github.com/paintmyrock/crazyfun/internal/fusion"
	"github.com/paintmyrock/crazyfun/internal/game"
	"github.com/paintmyrock/crazyfun/internal/keys"
	"github.com/paintmyrock/crazyfun/internal/logging"
)

// CodexRepo is the subset of storage backing the fusion codex.
type CodexRepo interface {
	UpsertCodexEntry(e *game.CodexEntry) (*game.CodexEntry, error)
	ListCodex() ([]game.CodexEntry, error)
}

// PreviewFusion derives the fusion of two catalog entities without storing it.
func PreviewFusion(reg *catalog.Registry, entityA, entityB string) (game.FusionCreature, error) {
	a, ok := reg.Get(entityA)
	if !ok {
		return game.FusionCreature{}, ErrUnknownEntity
	}
	b, ok := reg.Get(entityB)
	if !ok {
		return game.FusionCreature{}, ErrUnknownEntity
	}
	if a.ID == b.ID {
		return game.FusionCreature{}, ErrSelfFusion
	}
	return fusion.Derive(a, b), nil
}

// DiscoverFusion derives a fusion and records it in the codex. Concurrent
// discoveries of the same pair, in either order, share a single write.
func DiscoverFusion(repo CodexRepo, reg *catalog.Registry, entityA, entityB string) (*game.CodexEntry, error) {
	f, err := PreviewFusion(reg, entityA, entityB)
	if err != nil {
		return nil, err
	}
	first, second := keys.Ordered(entityA, entityB)

	v, err, shared := dedupe.FusionGroup.Do(f.FusionKey, func() (interface{}, error) {
		return repo.UpsertCodexEntry(&game.CodexEntry{
			FusionKey: f.FusionKey,
			ParentAID: first,
			ParentBID: second,
			Fusion:    f,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("record fusion: %w", err)
	}
	entry := v.(*game.CodexEntry)
	if !shared {
		logging.Info("fusion discovered", logging.Fields{
			constants.LogFieldFusionKey: f.FusionKey,
			constants.LogFieldEntityA:   first,
			constants.LogFieldEntityB:   second,
			constants.LogFieldCount:     entry.Discoveries,
		})
	}
	return entry, nil
}

func ListCodex(repo CodexRepo) ([]game.CodexEntry, error) {
	list, err := repo.ListCodex()
	if err != nil {
		return nil, fmt.Errorf("list codex: %w", err)
	}
	if list == nil {
		list = []game.CodexEntry{}
	}
	return list, nil
}
