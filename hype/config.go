package hype

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log      LogConfig      `toml:"log"`
	DB       DBConfig       `toml:"db"`
	Provider ProviderConfig `toml:"provider"`
	Ratings  RatingsConfig  `toml:"ratings"`
}

// LogConfig holds the minimum log level as a slog level name
// ("debug", "info", "warn", "error").
type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

// ProviderConfig points at the upstream results provider. FetchDelaySeconds
// paces successive event fetches during batch preloads so the provider's
// rate limits are respected.
type ProviderConfig struct {
	BaseURL           string `toml:"base_url"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	FetchDelaySeconds int    `toml:"fetch_delay_seconds"`
}

// RatingsConfig controls the aggregation windows. InheritCareer decides
// whether a driver with career history but no current-season events
// inherits the career average as seasonal or stays unrated.
type RatingsConfig struct {
	CurrentSeason       int  `toml:"current_season"`
	InheritCareer       bool `toml:"inherit_career"`
	MaxConcurrentBuilds int  `toml:"max_concurrent_builds"`
}
