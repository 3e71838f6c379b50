package storage

import (
	"errors"

	"github.com/paintmyrock/crazyfun/internal/game"
)

// ErrNotFound is returned when a trainer, collection entry or codex entry
// does not exist.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	TrainerRepository
	CollectionRepository
	CodexRepository
	// Transaction runs fn against a repository bound to a single database
	// transaction. Returning an error from fn rolls every write back.
	Transaction(fn func(tx Repository) error) error
}

type TrainerRepository interface {
	CreateTrainer(t *game.Trainer) error
	GetTrainerByUUID(uuid string) (*game.Trainer, error)
	SaveTrainer(t *game.Trainer) error
	// DeleteTrainer removes the trainer and every fusion in their collection.
	DeleteTrainer(uuid string) error
}

type CollectionRepository interface {
	// AddSavedFusion inserts f unless the trainer already owns the same fusion
	// key, in which case the existing row is returned with created=false.
	AddSavedFusion(f *game.SavedFusion) (saved *game.SavedFusion, created bool, err error)
	GetSavedFusion(trainerID uint, fusionKey string) (*game.SavedFusion, error)
	ListCollection(trainerID uint) ([]game.SavedFusion, error)
	RemoveSavedFusion(trainerID uint, fusionKey string) error
	RecordBattleResult(trainerID uint, fusionKey string, won bool) error
	// CollectionTotals returns the number of saved fusions and their summed
	// wins and losses.
	CollectionTotals(trainerID uint) (count, wins, losses int, err error)
}

type CodexRepository interface {
	// UpsertCodexEntry creates the entry or increments its discovery counter.
	UpsertCodexEntry(e *game.CodexEntry) (*game.CodexEntry, error)
	ListCodex() ([]game.CodexEntry, error)
}
