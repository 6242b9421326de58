// Package config loads application configuration from a YAML file,
// environment variables, and an optional .env file, with documented
// defaults for everything.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      App      `mapstructure:"app"`
	Output   Output   `mapstructure:"output"`
	Defaults Defaults `mapstructure:"defaults"`
}

// App holds general application configuration.
type App struct {
	LogLevel   string `mapstructure:"log_level"`
	ConfigFile string `mapstructure:"config_file"`
}

// Output holds file-save configuration for generated content.
type Output struct {
	Directory string `mapstructure:"directory"`
}

// Defaults holds fallback request parameters used when the CLI and
// interactive front-ends are not given explicit values.
type Defaults struct {
	Audience string `mapstructure:"audience"`
	Tone     string `mapstructure:"tone"`
	Platform string `mapstructure:"platform"`
}

var (
	cfg *Config
	mu  sync.RWMutex
)

// Load reads configuration from the given file (or the default search
// paths when empty), the environment, and .env. It is safe to call more
// than once; the last successful load wins.
func Load(configFile string) (*Config, error) {
	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".copysmith")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix("COPYSMITH")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	loaded.App.ConfigFile = viper.ConfigFileUsed()

	mu.Lock()
	cfg = loaded
	mu.Unlock()
	return loaded, nil
}

// Get returns the loaded configuration, loading defaults if Load has not
// been called yet.
func Get() *Config {
	mu.RLock()
	current := cfg
	mu.RUnlock()
	if current != nil {
		return current
	}
	loaded, err := Load("")
	if err != nil {
		// Fall back to pure defaults when the config file is unreadable.
		setDefaults()
		loaded = &Config{}
		_ = viper.Unmarshal(loaded)
		mu.Lock()
		cfg = loaded
		mu.Unlock()
	}
	return loaded
}

func setDefaults() {
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("output.directory", "generated_content")

	viper.SetDefault("defaults.audience", "general")
	viper.SetDefault("defaults.tone", "professional")
	viper.SetDefault("defaults.platform", "general")
}
