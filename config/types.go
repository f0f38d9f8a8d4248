package config

import (
	"time"

	"github.com/s0up4200/twitterctl/twitter"
)

// Config represents the complete configuration structure
type Config struct {
	Twitter TwitterConfig `mapstructure:"twitter"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Authentication modes
const (
	AuthUser = "user"
	AuthApp  = "app"
)

// TwitterConfig holds the API endpoint and credentials
type TwitterConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	TokenURL          string        `mapstructure:"token_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	Auth              string        `mapstructure:"auth"`
	ConsumerKey       string        `mapstructure:"consumer_key"`
	ConsumerSecret    string        `mapstructure:"consumer_secret"`
	AccessToken       string        `mapstructure:"access_token"`
	AccessTokenSecret string        `mapstructure:"access_token_secret"`
}

// Credentials returns the OAuth 1.0a user credentials
func (c TwitterConfig) Credentials() twitter.UserCredentials {
	return twitter.UserCredentials{
		ConsumerKey:       c.ConsumerKey,
		ConsumerSecret:    c.ConsumerSecret,
		AccessToken:       c.AccessToken,
		AccessTokenSecret: c.AccessTokenSecret,
	}
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format   string `mapstructure:"format"`
	Details  bool   `mapstructure:"details"`
	Entities bool   `mapstructure:"entities"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
