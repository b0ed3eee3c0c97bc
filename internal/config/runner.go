package config

import (
	"time"

	"github.com/spf13/viper"
)

// RunnerConfig holds configuration for the wasirun tool.
type RunnerConfig struct {
	LogLevel string     `mapstructure:"log_level"`
	Wasm     WasmConfig `mapstructure:"wasm"`
}

// WasmConfig holds wasm runtime configuration.
type WasmConfig struct {
	// Compilation cache directory. Empty disables on-disk caching.
	CacheDir string `mapstructure:"cache_dir"`
	// Guest execution timeout (seconds). Zero disables the timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Timeout returns the guest execution timeout as a duration.
func (c *WasmConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadRunnerConfig loads defaults and, when configPath is non-empty, merges
// the config file over them.
func LoadRunnerConfig(configPath string) (*RunnerConfig, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("wasm.cache_dir", "")
	v.SetDefault("wasm.timeout_seconds", 30)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg RunnerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
