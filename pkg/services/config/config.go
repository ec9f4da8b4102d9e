package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the application configuration loaded from a YAML file.
type Config struct {
	CachePath string `mapstructure:"cache_path"`
	Sources   struct {
		RegistryPath string `mapstructure:"registry_path"`
		Profile      string `mapstructure:"profile"`
	} `mapstructure:"sources"`
	Watchlist []string `mapstructure:"watchlist"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("cache_path", "filing-atlas.db")
	v.SetDefault("sources.profile", "default")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
