// Package config provides configuration management for the exchange client
// and the local facade daemon. It is the only place that reads the process
// environment; everything downstream receives explicit values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexbotov/betfair/pkg/aping"
)

// Environment keys published by the external login step. The login
// collaborator exports the application key as "product" and the session
// token as "token"; this package only reads them.
const (
	EnvAppKey       = "product"
	EnvSessionToken = "token"
)

// Config holds all configuration for the daemon
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Exchange ExchangeConfig `yaml:"exchange"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string   `yaml:"port"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
}

// ExchangeConfig holds the exchange client configuration
type ExchangeConfig struct {
	AppKey             string   `yaml:"app_key"`
	SessionToken       string   `yaml:"session_token"`
	BettingURL         string   `yaml:"betting_url"`
	AccountURL         string   `yaml:"account_url"`
	Locale             string   `yaml:"locale"`
	Timeout            Duration `yaml:"timeout"`
	InsecureSkipVerify bool     `yaml:"insecure_skip_verify"`
}

// Duration wraps time.Duration so YAML values like "30s" decode
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load loads configuration from environment with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("APID_PORT", "8080"),
			ReadTimeout:  Duration(30 * time.Second),
			WriteTimeout: Duration(30 * time.Second),
		},
		Exchange: ExchangeConfig{
			AppKey:             os.Getenv(EnvAppKey),
			SessionToken:       os.Getenv(EnvSessionToken),
			BettingURL:         getEnv("BETFAIR_BETTING_URL", aping.BettingURL),
			AccountURL:         getEnv("BETFAIR_ACCOUNT_URL", aping.AccountURL),
			Locale:             os.Getenv("BETFAIR_LOCALE"),
			Timeout:            Duration(30 * time.Second),
			InsecureSkipVerify: getEnvBool("BETFAIR_INSECURE", false),
		},
	}
}

// LoadFile loads the environment configuration and overlays it with the
// values present in a YAML file. Keys absent from the file keep their
// environment or default values.
func LoadFile(path string) (*Config, error) {
	cfg := Load()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ClientConfig translates the exchange section into an aping client config
func (c *ExchangeConfig) ClientConfig() *aping.ClientConfig {
	return &aping.ClientConfig{
		BettingURL:         c.BettingURL,
		AccountURL:         c.AccountURL,
		AppKey:             c.AppKey,
		SessionToken:       c.SessionToken,
		Locale:             c.Locale,
		Timeout:            time.Duration(c.Timeout),
		InsecureSkipVerify: c.InsecureSkipVerify,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
