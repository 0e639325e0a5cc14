package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"pwvault/internal/crypto"
	"pwvault/internal/logging"
	"pwvault/internal/prompt"
	"pwvault/internal/store"
)

// EnvPrefix is prepended to environment overrides, e.g. PWVAULT_FILE.
const EnvPrefix = "PWVAULT"

// Config holds runtime wiring options for building the app.
type Config struct {
	File   string       `mapstructure:"file"` // entry document, e.g. $HOME/password_entries.json
	Hash   HashConfig   `mapstructure:"hash"`
	Log    LogConfig    `mapstructure:"log"`
	Prompt PromptConfig `mapstructure:"prompt"`
}

type HashConfig struct {
	Algorithm string `mapstructure:"algorithm"` // bcrypt or scrypt
	Cost      int    `mapstructure:"cost"`      // bcrypt work factor
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type PromptConfig struct {
	MaxAttempts int `mapstructure:"max_attempts"`
}

// DefaultFile returns the entry document under the user's home directory.
func DefaultFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return store.DefaultFilename
	}
	return filepath.Join(home, store.DefaultFilename)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("file", DefaultFile())
	v.SetDefault("hash.algorithm", crypto.AlgorithmBcrypt)
	v.SetDefault("hash.cost", bcrypt.DefaultCost)
	v.SetDefault("log.level", "info")
	v.SetDefault("prompt.max_attempts", prompt.DefaultMaxAttempts)
}

// NewViper returns a viper instance with defaults, config-file search paths
// and environment overrides set up. configFile, when non-empty, replaces the
// search.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("pwvault")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "pwvault"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pwvault"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and returns the validated Config.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.File = expandHome(cfg.File)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("config: file is required")
	}
	switch strings.ToLower(c.Hash.Algorithm) {
	case crypto.AlgorithmBcrypt:
		if c.Hash.Cost < bcrypt.MinCost || c.Hash.Cost > bcrypt.MaxCost {
			return fmt.Errorf("config: hash.cost %d outside [%d, %d]", c.Hash.Cost, bcrypt.MinCost, bcrypt.MaxCost)
		}
	case crypto.AlgorithmScrypt:
	default:
		return fmt.Errorf("config: hash.algorithm %q (must be bcrypt or scrypt)", c.Hash.Algorithm)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Prompt.MaxAttempts < 1 {
		return fmt.Errorf("config: prompt.max_attempts must be at least 1")
	}
	return nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
