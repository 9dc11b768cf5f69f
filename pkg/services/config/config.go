package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// AlertStoreKind selects the alert store implementation at construction
// time; there is no runtime capability probing.
type AlertStoreKind string

const (
	AlertStoreDurable AlertStoreKind = "durable"
	AlertStoreMemory  AlertStoreKind = "memory"
)

// Config is the web server configuration. Values come from the optional
// config file, overridden by FINSIGHT_* environment variables.
type Config struct {
	Host          string         `mapstructure:"host"`
	Port          string         `mapstructure:"port"`
	RegistryPath  string         `mapstructure:"registry_path"`
	Profile       string         `mapstructure:"profile"`
	ThresholdPct  float64        `mapstructure:"threshold_pct"`
	TopDrivers    int            `mapstructure:"top_drivers"`
	AlertStore    AlertStoreKind `mapstructure:"alert_store"`
	AlertInterval time.Duration  `mapstructure:"alert_interval"`
	LogDir        string         `mapstructure:"log_dir"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8000")
	v.SetDefault("threshold_pct", 0.10)
	v.SetDefault("top_drivers", 3)
	v.SetDefault("alert_store", string(AlertStoreDurable))
	v.SetDefault("alert_interval", 24*time.Hour)

	v.SetEnvPrefix("FINSIGHT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.AlertStore {
	case AlertStoreDurable, AlertStoreMemory:
	default:
		return nil, fmt.Errorf("unknown alert_store %q (want durable or memory)", cfg.AlertStore)
	}
	return &cfg, nil
}
