package configs

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

var envOnce sync.Once

// ConfigHolder interface for app config
type ConfigHolder interface {
	GetStaticConfig() interface{}
}

// InitConfig loads the static configuration from environment variables.
func InitConfig(configHolder ConfigHolder) {
	envOnce.Do(viper.AutomaticEnv)

	staticConfig := configHolder.GetStaticConfig()
	cfg, ok := staticConfig.(*Configs)
	if !ok {
		log.Fatal("Failed to cast static config to *Configs")
	}

	// Bind environment variables to config keys
	// This maps APP_NAME (env) -> app_name (config key)
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}

	applyDefaults(cfg)
}

func applyDefaults(cfg *Configs) {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.PrefillDataset == "" {
		cfg.PrefillDataset = "final_prefill_all.xlsx"
	}
	if cfg.DecodeDataset == "" {
		cfg.DecodeDataset = "final_decode_all.xlsx"
	}
	if cfg.DatasetCacheSize == 0 {
		cfg.DatasetCacheSize = 64
	}
	if cfg.DatasetCacheTTLSec == 0 {
		cfg.DatasetCacheTTLSec = 300
	}
	if cfg.LeaderboardTopN == 0 {
		cfg.LeaderboardTopN = 20
	}
	if cfg.DefaultGpuHourlyPrice == 0 {
		cfg.DefaultGpuHourlyPrice = 2.5
	}
	if cfg.JwtExpiryHours == 0 {
		cfg.JwtExpiryHours = 24
	}
}
