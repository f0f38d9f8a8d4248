package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/twitterctl/format"
	"github.com/s0up4200/twitterctl/twitter"
)

// EnvPrefix prefixes environment variables overriding config keys,
// e.g. TWITTERCTL_TWITTER_CONSUMER_KEY for twitter.consumer_key
const EnvPrefix = "TWITTERCTL"

// Load loads the configuration. Variables from a .env file in the working
// directory are exported first. An explicit configPath must exist; without
// one the standard locations are searched and the file is optional, so a
// setup based only on environment variables works.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".twitterctl"))
		}
		v.AddConfigPath("/etc/twitterctl/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key gets one so
// that AutomaticEnv can bind it.
func setDefaults(v *viper.Viper) {
	// Twitter defaults
	v.SetDefault("twitter.base_url", twitter.DefaultBaseURL)
	v.SetDefault("twitter.token_url", twitter.DefaultTokenURL)
	v.SetDefault("twitter.timeout", 30*time.Second)
	v.SetDefault("twitter.auth", AuthUser)
	v.SetDefault("twitter.consumer_key", "")
	v.SetDefault("twitter.consumer_secret", "")
	v.SetDefault("twitter.access_token", "")
	v.SetDefault("twitter.access_token_secret", "")

	// Output defaults
	v.SetDefault("output.format", string(format.FormatText))
	v.SetDefault("output.details", true)
	v.SetDefault("output.entities", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Twitter.BaseURL) == "" {
		return fmt.Errorf("twitter.base_url is required")
	}

	if cfg.Twitter.Timeout <= 0 {
		return fmt.Errorf("twitter.timeout must be positive")
	}

	switch cfg.Twitter.Auth {
	case AuthUser:
		if err := cfg.Twitter.Credentials().Validate(); err != nil {
			return fmt.Errorf("twitter credentials: %w", err)
		}
	case AuthApp:
		if cfg.Twitter.ConsumerKey == "" || cfg.Twitter.ConsumerSecret == "" {
			return fmt.Errorf("twitter.consumer_key and twitter.consumer_secret are required for app auth")
		}
	default:
		return fmt.Errorf("invalid twitter.auth: %s (must be '%s' or '%s')", cfg.Twitter.Auth, AuthUser, AuthApp)
	}

	if _, err := format.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("invalid output.format: %w", err)
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset '%s' has an empty expression", name)
		}
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
