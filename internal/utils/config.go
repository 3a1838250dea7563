package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"qr2svg/internal/encoder"
)

const defaultConfigPath = "config.yaml"

// Config is the service configuration loaded from YAML.
type Config struct {
	Server struct {
		Host          string `yaml:"host"`
		Port          string `yaml:"port"`
		Prefork       bool   `yaml:"prefork"`
		EnableMonitor bool   `yaml:"enable_monitor"`
	} `yaml:"server"`
	Logger struct {
		File       string `yaml:"file"`
		Level      string `yaml:"level"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"logger"`
	Render struct {
		BlockSize       float64 `yaml:"block_size"`
		ErrorCorrection string  `yaml:"error_correction"`
	} `yaml:"render"`
	Auth struct {
		APIKeys []string `yaml:"api_keys"`
	} `yaml:"auth"`
}

var (
	AppConfig Config
	configMu  sync.RWMutex
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var cfg Config
	cfg.Server.Port = ":8080"
	cfg.Logger.Level = "info"
	cfg.Logger.MaxSizeMB = 10
	cfg.Logger.MaxBackups = 3
	cfg.Logger.MaxAgeDays = 7
	cfg.Render.BlockSize = 50
	cfg.Render.ErrorCorrection = "medium"
	return cfg
}

// LoadConfig reads the file named by CONFIG_PATH (default config.yaml) and
// stores it as AppConfig. A missing default file yields DefaultConfig.
func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnvOverrides(&cfg)
			setConfig(cfg)
			return cfg
		}
		path = defaultConfigPath
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads and validates the config at path. It panics if the
// file cannot be read or contains invalid values.
func LoadConfigFrom(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to read config %s: %v", path, err))
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse config %s: %v", path, err))
	}
	applyEnvOverrides(&cfg)
	if err := validateConfig(cfg); err != nil {
		panic(fmt.Sprintf("invalid config %s: %v", path, err))
	}

	setConfig(cfg)
	return cfg
}

// GetConfig returns the most recently loaded configuration.
func GetConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return AppConfig
}

func setConfig(cfg Config) {
	configMu.Lock()
	AppConfig = cfg
	configMu.Unlock()
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if v[0] != ':' {
			v = ":" + v
		}
		cfg.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
}

func validateConfig(cfg Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is empty")
	}
	if cfg.Render.BlockSize <= 0 {
		return fmt.Errorf("render.block_size must be positive, got %v", cfg.Render.BlockSize)
	}
	if _, err := encoder.ParseLevel(cfg.Render.ErrorCorrection); err != nil {
		return fmt.Errorf("render.error_correction: %w", err)
	}
	for i, k := range cfg.Auth.APIKeys {
		if k == "" {
			return fmt.Errorf("auth.api_keys[%d] is empty", i)
		}
	}
	return nil
}
