package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paintmyrock/crazyfun/internal/catalog"
	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/game"
	"github.com/paintmyrock/crazyfun/internal/logging"
	"github.com/paintmyrock/crazyfun/internal/storage"
)

// CollectionRepo is the subset of storage needed to manage a collection.
type CollectionRepo interface {
	GetTrainerByUUID(uuid string) (*game.Trainer, error)
	AddSavedFusion(f *game.SavedFusion) (*game.SavedFusion, bool, error)
	ListCollection(trainerID uint) ([]game.SavedFusion, error)
	RemoveSavedFusion(trainerID uint, fusionKey string) error
	RecordBattleResult(trainerID uint, fusionKey string, won bool) error
}

// AddToCollection fuses two catalog entities and saves the result for the
// trainer. Saving a fusion the trainer already owns returns the stored entry
// with created=false.
func AddToCollection(repo CollectionRepo, reg *catalog.Registry, trainerID, entityA, entityB, nickname string) (*game.SavedFusion, bool, error) {
	t, err := GetTrainer(repo, trainerID)
	if err != nil {
		return nil, false, err
	}
	f, err := PreviewFusion(reg, entityA, entityB)
	if err != nil {
		return nil, false, err
	}
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		nickname = f.Name
	}

	saved, created, err := repo.AddSavedFusion(&game.SavedFusion{
		TrainerID: t.ID,
		FusionKey: f.FusionKey,
		Fusion:    f,
		Nickname:  nickname,
	})
	if err != nil {
		return nil, false, fmt.Errorf("save fusion: %w", err)
	}
	if created {
		logging.Info("fusion saved to collection", logging.Fields{
			constants.LogFieldTrainerID: trainerID,
			constants.LogFieldFusionKey: f.FusionKey,
		})
	}
	return saved, created, nil
}

// ListCollection returns the trainer's fusions in the order they were saved.
func ListCollection(repo CollectionRepo, trainerID string) ([]game.SavedFusion, error) {
	t, err := GetTrainer(repo, trainerID)
	if err != nil {
		return nil, err
	}
	list, err := repo.ListCollection(t.ID)
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	if list == nil {
		list = []game.SavedFusion{}
	}
	return list, nil
}

func RemoveFromCollection(repo CollectionRepo, trainerID, fusionKey string) error {
	t, err := GetTrainer(repo, trainerID)
	if err != nil {
		return err
	}
	if err := repo.RemoveSavedFusion(t.ID, fusionKey); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrFusionNotInCollection
		}
		return fmt.Errorf("remove fusion: %w", err)
	}
	return nil
}

// ResultRepo is the subset of storage needed to book a battle result.
type ResultRepo interface {
	GetTrainerByUUID(uuid string) (*game.Trainer, error)
	RecordBattleResult(trainerID uint, fusionKey string, won bool) error
}

// RecordBattleResult adds a win or a loss to a saved fusion.
func RecordBattleResult(repo ResultRepo, trainerID, fusionKey string, won bool) error {
	t, err := GetTrainer(repo, trainerID)
	if err != nil {
		return err
	}
	if err := repo.RecordBattleResult(t.ID, fusionKey, won); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrFusionNotInCollection
		}
		return fmt.Errorf("record battle result: %w", err)
	}
	return nil
}
