package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "PROFILEMANAGER"

// AppConfig aggregates every configuration section
type AppConfig struct {
	App     App     `mapstructure:"app"`
	Storage Storage `mapstructure:"storage"`
	Log     Log     `mapstructure:"log"`
}

type App struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// Storage describes the profile data file and when it is read or written implicitly
type Storage struct {
	DataFile string `mapstructure:"data_file"`
	AutoLoad bool   `mapstructure:"auto_load"`
	AutoSave bool   `mapstructure:"auto_save"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	mu      sync.RWMutex
	current *AppConfig
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "profilemanager")
	v.SetDefault("app.environment", "local")
	v.SetDefault("storage.data_file", "profiles.txt")
	v.SetDefault("storage.auto_load", false)
	v.SetDefault("storage.auto_save", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from path (optional) and PROFILEMANAGER_* environment variables
// An empty path looks for profilemanager.yaml in the working directory and skips it when absent.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("profilemanager")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mu.Lock()
	current = cfg
	mu.Unlock()

	return cfg, nil
}

// Validate checks the values that the rest of the application relies on
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Storage.DataFile) == "" {
		return errors.New("storage.data_file must not be empty")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format value %q: expected text or json", c.Log.Format)
	}
	return nil
}

// GetConfig returns the most recently loaded configuration, loading defaults on first use
func GetConfig() (*AppConfig, error) {
	mu.RLock()
	cfg := current
	mu.RUnlock()
	if cfg != nil {
		return cfg, nil
	}
	return Load("")
}
