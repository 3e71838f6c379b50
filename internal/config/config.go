package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/paintmyrock/crazyfun/internal/catalog"
	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/game"
)

type rawConfig struct {
	// Optional. When present it replaces the embedded catalog entirely.
	EntityList []game.BaseEntity `json:"entity_list"`
	Server     *struct {
		Address string `json:"address"`
	} `json:"server"`
	Arena *struct {
		OpponentCount int `json:"opponent_count"`
	} `json:"arena"`
}

// LoadedConfig contains the entity catalog, the server address to bind to
// and arena tuning.
type LoadedConfig struct {
	Entities      []game.BaseEntity
	ServerAddress string
	OpponentCount int
	// FromFile is false when the config file did not exist and defaults were used.
	FromFile bool
}

// Defaults returns the configuration used when no config file exists.
func Defaults() (*LoadedConfig, error) {
	entities, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return &LoadedConfig{
		Entities:      entities,
		ServerAddress: constants.DefaultServerAddress,
		OpponentCount: constants.DefaultOpponentCount,
	}, nil
}

// LoadConfig reads the configuration file at path. A missing file is not an
// error: the embedded catalog and default settings are returned instead.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults()
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a config document.
func Parse(b []byte) (*LoadedConfig, error) {
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	cfg.FromFile = true

	if len(rc.EntityList) > 0 {
		if err := catalog.Validate(rc.EntityList); err != nil {
			return nil, fmt.Errorf("entity_list: %w", err)
		}
		cfg.Entities = rc.EntityList
	}

	if rc.Server != nil && strings.TrimSpace(rc.Server.Address) != "" {
		cfg.ServerAddress = strings.TrimSpace(rc.Server.Address)
	}

	if rc.Arena != nil && rc.Arena.OpponentCount != 0 {
		n := rc.Arena.OpponentCount
		if n < 1 || n > constants.MaxOpponentCount {
			return nil, fmt.Errorf("arena.opponent_count must be between 1 and %d, got %d", constants.MaxOpponentCount, n)
		}
		cfg.OpponentCount = n
	}

	return cfg, nil
}
