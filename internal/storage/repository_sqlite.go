package storage

import (
	"errors"
	"time"

	"github.com/paintmyrock/crazyfun/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *sqliteRepository) Transaction(fn func(tx Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&sqliteRepository{db: tx})
	})
}

func (r *sqliteRepository) CreateTrainer(t *game.Trainer) error {
	return r.db.Create(t).Error
}

func (r *sqliteRepository) GetTrainerByUUID(uuid string) (*game.Trainer, error) {
	var t game.Trainer
	if err := r.db.Where("trainer_uuid = ?", uuid).First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *sqliteRepository) SaveTrainer(t *game.Trainer) error {
	return r.db.Save(t).Error
}

func (r *sqliteRepository) DeleteTrainer(uuid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var t game.Trainer
		if err := tx.Where("trainer_uuid = ?", uuid).First(&t).Error; err != nil {
			return notFound(err)
		}
		// Hard deletes: the unique (trainer, fusion) index must not keep
		// soft-deleted rows around.
		if err := tx.Unscoped().Where("trainer_id = ?", t.ID).Delete(&game.SavedFusion{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&t).Error
	})
}

func (r *sqliteRepository) AddSavedFusion(f *game.SavedFusion) (*game.SavedFusion, bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "trainer_id"}, {Name: "fusion_key"}},
		DoNothing: true,
	}).Create(f)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return f, true, nil
	}
	existing, err := r.GetSavedFusion(f.TrainerID, f.FusionKey)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *sqliteRepository) GetSavedFusion(trainerID uint, fusionKey string) (*game.SavedFusion, error) {
	var f game.SavedFusion
	if err := r.db.Where("trainer_id = ? AND fusion_key = ?", trainerID, fusionKey).First(&f).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (r *sqliteRepository) ListCollection(trainerID uint) ([]game.SavedFusion, error) {
	var out []game.SavedFusion
	if err := r.db.Where("trainer_id = ?", trainerID).Order("created_at asc").Order("id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) RemoveSavedFusion(trainerID uint, fusionKey string) error {
	res := r.db.Unscoped().Where("trainer_id = ? AND fusion_key = ?", trainerID, fusionKey).Delete(&game.SavedFusion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) RecordBattleResult(trainerID uint, fusionKey string, won bool) error {
	column := "losses"
	if won {
		column = "wins"
	}
	res := r.db.Model(&game.SavedFusion{}).
		Where("trainer_id = ? AND fusion_key = ?", trainerID, fusionKey).
		Update(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) CollectionTotals(trainerID uint) (int, int, int, error) {
	var totals struct {
		Count  int
		Wins   int
		Losses int
	}
	err := r.db.Model(&game.SavedFusion{}).
		Select("count(*) AS count, coalesce(sum(wins), 0) AS wins, coalesce(sum(losses), 0) AS losses").
		Where("trainer_id = ?", trainerID).
		Scan(&totals).Error
	if err != nil {
		return 0, 0, 0, err
	}
	return totals.Count, totals.Wins, totals.Losses, nil
}

func (r *sqliteRepository) UpsertCodexEntry(e *game.CodexEntry) (*game.CodexEntry, error) {
	if e.Discoveries == 0 {
		e.Discoveries = 1
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "fusion_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"discoveries": gorm.Expr("fusion_codex.discoveries + 1"),
			"updated_at":  time.Now(),
		}),
	}).Create(e).Error
	if err != nil {
		return nil, err
	}
	var out game.CodexEntry
	if err := r.db.Where("fusion_key = ?", e.FusionKey).First(&out).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *sqliteRepository) ListCodex() ([]game.CodexEntry, error) {
	var out []game.CodexEntry
	if err := r.db.Order("discoveries desc").Order("fusion_key asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
