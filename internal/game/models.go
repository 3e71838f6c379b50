package game

import "gorm.io/gorm"

// Category tells whether a base entity is an animal or an everyday object.
type Category string

const (
	CategoryAnimal Category = "animal"
	CategoryObject Category = "object"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryAnimal || c == CategoryObject
}

// Move is an attack inherited by a fusion from one of its parents.
type Move struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ElementType `json:"type"`
	Power       int         `json:"power"`
	Description string      `json:"description"`
}

type BaseStats struct {
	HitPoints int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Speed     int `json:"speed"`
}

// BaseEntity is a static catalog record. Two distinct entities are fused into
// a FusionCreature; the catalog itself is read-only.
type BaseEntity struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      Category    `json:"category"`
	ElementalType ElementType `json:"elemental_type"`
	// ImageEmoji is the sprite reference shown by clients.
	ImageEmoji string    `json:"image_emoji"`
	BaseStats  BaseStats `json:"base_stats"`
	Move       Move      `json:"move"`
}

type FusionStats struct {
	HitPoints    int `json:"hp"`
	Attack       int `json:"attack"`
	Defense      int `json:"defense"`
	Speed        int `json:"speed"`
	SpecialPower int `json:"special_power"`
}

// FusionCreature is derived from exactly two base entities. Every paired field
// (Types, Moves, ParentIDs) follows the canonical parent order used for
// FusionKey, never the order the parents were supplied in.
type FusionCreature struct {
	FusionKey   string         `json:"fusion_key"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageEmoji  string         `json:"image_emoji"`
	Types       [2]ElementType `json:"types"`
	Stats       FusionStats    `json:"stats"`
	Moves       [2]Move        `json:"moves"`
	ParentIDs   [2]string      `json:"parent_ids"`
}

// MoveByID returns the fusion's move with the given id.
func (f FusionCreature) MoveByID(id string) (Move, bool) {
	for _, m := range f.Moves {
		if m.ID == id {
			return m, true
		}
	}
	return Move{}, false
}

// BattleStatus is the state machine tag of a BattleState.
type BattleStatus string

const (
	StatusSelecting BattleStatus = "selecting"
	StatusBattling  BattleStatus = "battling"
	StatusVictory   BattleStatus = "victory"
	StatusDefeat    BattleStatus = "defeat"
)

// Terminal reports whether no further turns are valid.
func (s BattleStatus) Terminal() bool {
	return s == StatusVictory || s == StatusDefeat
}

// BattleState is replaced, never mutated, on every turn. BattleLog only grows.
type BattleState struct {
	PlayerFusion   FusionCreature `json:"player_fusion"`
	OpponentFusion FusionCreature `json:"opponent_fusion"`
	PlayerHP       int            `json:"player_hp"`
	OpponentHP     int            `json:"opponent_hp"`
	Turn           int            `json:"turn"`
	IsPlayerTurn   bool           `json:"is_player_turn"`
	BattleLog      []string       `json:"battle_log"`
	Status         BattleStatus   `json:"status"`
}

// Trainer is the player's persisted profile.
type Trainer struct {
	gorm.Model
	TrainerUUID string `json:"id" gorm:"uniqueIndex"`
	Username    string `json:"username" gorm:"size:15"`
	AvatarEmoji string `json:"avatar_emoji"`
	XP          int    `json:"xp"`
	Level       int    `json:"level"`
}

// Store trainer profiles in a dedicated table.
func (Trainer) TableName() string { return "trainer_profiles" }

// SavedFusion is one fusion in a trainer's collection with its battle record.
// The fusion is stored verbatim as JSON; it is never re-derived on load.
type SavedFusion struct {
	gorm.Model
	TrainerID uint           `json:"-" gorm:"uniqueIndex:idx_trainer_collection_fusion"`
	FusionKey string         `json:"fusion_key" gorm:"uniqueIndex:idx_trainer_collection_fusion"`
	Fusion    FusionCreature `json:"fusion" gorm:"serializer:json"`
	Nickname  string         `json:"nickname"`
	Wins      int            `json:"wins"`
	Losses    int            `json:"losses"`
}

func (SavedFusion) TableName() string { return "trainer_collection" }

// CodexEntry records a fusion discovered in the fusion lab. Entries are keyed
// by the canonical fusion key so A+B and B+A share one row.
type CodexEntry struct {
	gorm.Model
	FusionKey   string         `json:"fusion_key" gorm:"uniqueIndex"`
	ParentAID   string         `json:"parent_a_id"`
	ParentBID   string         `json:"parent_b_id"`
	Fusion      FusionCreature `json:"fusion" gorm:"serializer:json"`
	Discoveries int            `json:"discoveries"`
}

func (CodexEntry) TableName() string { return "fusion_codex" }
