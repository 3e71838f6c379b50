package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/engine"
	"github.com/paintmyrock/crazyfun/internal/game"
	"github.com/paintmyrock/crazyfun/internal/logging"
	"github.com/paintmyrock/crazyfun/internal/storage"
)

// TrainerRepo is the subset of storage needed to manage trainer profiles.
type TrainerRepo interface {
	CreateTrainer(t *game.Trainer) error
	GetTrainerByUUID(uuid string) (*game.Trainer, error)
	SaveTrainer(t *game.Trainer) error
	DeleteTrainer(uuid string) error
}

// SummaryRepo adds the collection totals needed by Summary.
type SummaryRepo interface {
	GetTrainerByUUID(uuid string) (*game.Trainer, error)
	CollectionTotals(trainerID uint) (count, wins, losses int, err error)
}

// TrainerSummary is what the main menu shows for a trainer.
type TrainerSummary struct {
	Trainer        *game.Trainer `json:"trainer"`
	Level          int           `json:"level"`
	XP             int           `json:"xp"`
	XPForNextLevel int           `json:"xp_for_next_level"`
	Progress       float64       `json:"progress"`
	FusionCount    int           `json:"fusion_count"`
	Wins           int           `json:"wins"`
	Losses         int           `json:"losses"`
	WinRate        float64       `json:"win_rate"`
}

func validAvatar(a string) bool {
	for _, v := range constants.TrainerAvatars {
		if v == a {
			return true
		}
	}
	return false
}

// CreateTrainer registers a new trainer at level 1 with no experience. The
// username is trimmed; an empty avatar selects the default one.
func CreateTrainer(repo TrainerRepo, username, avatar string) (*game.Trainer, error) {
	name := strings.TrimSpace(username)
	if n := utf8.RuneCountInString(name); n < constants.MinUsernameLength || n > constants.MaxUsernameLength {
		return nil, ErrInvalidUsername
	}
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		avatar = constants.TrainerAvatars[0]
	}
	if !validAvatar(avatar) {
		return nil, ErrInvalidAvatar
	}

	t := &game.Trainer{
		TrainerUUID: uuid.NewString(),
		Username:    name,
		AvatarEmoji: avatar,
		XP:          0,
		Level:       1,
	}
	if err := repo.CreateTrainer(t); err != nil {
		return nil, fmt.Errorf("create trainer: %w", err)
	}
	logging.Info("trainer created", logging.Fields{constants.LogFieldTrainerID: t.TrainerUUID})
	return t, nil
}

// GetTrainer loads a trainer by its public id.
func GetTrainer(repo interface {
	GetTrainerByUUID(uuid string) (*game.Trainer, error)
}, trainerID string) (*game.Trainer, error) {
	t, err := repo.GetTrainerByUUID(trainerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("get trainer: %w", err)
	}
	return t, nil
}

// XPRepo is the subset of storage needed to grant experience.
type XPRepo interface {
	GetTrainerByUUID(uuid string) (*game.Trainer, error)
	SaveTrainer(t *game.Trainer) error
}

// AddXP grants experience and recomputes the level from the new total.
func AddXP(repo XPRepo, trainerID string, amount int) (*game.Trainer, error) {
	t, err := GetTrainer(repo, trainerID)
	if err != nil {
		return nil, err
	}
	applyXP(t, amount)
	if err := repo.SaveTrainer(t); err != nil {
		return nil, fmt.Errorf("save trainer: %w", err)
	}
	return t, nil
}

func applyXP(t *game.Trainer, amount int) {
	t.XP += amount
	if t.XP < 0 {
		t.XP = 0
	}
	t.Level = engine.Level(t.XP)
}

// Summary returns the trainer's progress and collection totals.
func Summary(repo SummaryRepo, trainerID string) (*TrainerSummary, error) {
	t, err := GetTrainer(repo, trainerID)
	if err != nil {
		return nil, err
	}
	count, wins, losses, err := repo.CollectionTotals(t.ID)
	if err != nil {
		return nil, fmt.Errorf("collection totals: %w", err)
	}
	return &TrainerSummary{
		Trainer:        t,
		Level:          t.Level,
		XP:             t.XP,
		XPForNextLevel: engine.XPForNextLevel(t.Level),
		Progress:       engine.LevelProgress(t.XP, t.Level),
		FusionCount:    count,
		Wins:           wins,
		Losses:         losses,
		WinRate:        WinRate(wins, losses),
	}, nil
}

// WinRate is wins/(wins+losses), or 0 before the first battle.
func WinRate(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

// DeleteTrainer clears the trainer and their whole collection.
func DeleteTrainer(repo TrainerRepo, trainerID string) error {
	if err := repo.DeleteTrainer(trainerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return fmt.Errorf("delete trainer: %w", err)
	}
	logging.Info("trainer deleted", logging.Fields{constants.LogFieldTrainerID: trainerID})
	return nil
}
