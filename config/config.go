package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	validator "gopkg.in/validator.v2"
)

const DevelopmentSecretKey = "fallback-secret-key-change-in-production"

type Config struct {
	ListenHost        string      `json:"listen_host" validate:"nonzero"`
	ListenPort        int         `json:"listen_port" validate:"nonzero"`
	DebugServerHost   string      `json:"debug_server_host"`
	DebugServerPort   int         `json:"debug_server_port"`
	MetricsPort       int         `json:"metrics_port"`
	Environment       string      `json:"environment" validate:"nonzero"`
	SecretKey         string      `json:"secret_key" validate:"nonzero"`
	FrontendURL       string      `json:"frontend_url"`
	Database          MongoConfig `json:"database"`
	TokenTTLHours     int         `json:"token_ttl_hours" validate:"min=1"`
	MaxRecordsPerPage int         `json:"max_records_per_page" validate:"min=1"`
	LogPrefix         string      `json:"log_prefix" validate:"nonzero"`
	LogLevel          string      `json:"log_level"`
}

type MongoConfig struct {
	URI            string `json:"uri" validate:"nonzero"`
	Name           string `json:"name" validate:"nonzero"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"min=1"`
}

func (c *Config) Validate() error {
	if c.Environment == "production" && c.SecretKey == DevelopmentSecretKey {
		return fmt.Errorf("secret_key must be set in production")
	}
	return validator.Validate(c)
}

// New builds the configuration from an optional JSON file overlaid with
// the process environment. Environment variables win so that the hosting
// platform's injected values take effect without a config file.
func New(path string) (*Config, error) {
	cfg := &Config{
		ListenHost:        "0.0.0.0",
		ListenPort:        5001,
		DebugServerHost:   "127.0.0.1",
		DebugServerPort:   17002,
		MetricsPort:       17003,
		Environment:       "development",
		SecretKey:         DevelopmentSecretKey,
		FrontendURL:       "https://tutorial-7-frontend.onrender.com",
		TokenTTLHours:     24,
		MaxRecordsPerPage: 100,
		LogPrefix:         "tutorial7",
		Database: MongoConfig{
			URI:            "mongodb://127.0.0.1:27017",
			Name:           "registration_db",
			TimeoutSeconds: 30,
		},
	}

	if path != "" {
		jsonBytes, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %s", err)
		}
		err = json.Unmarshal(jsonBytes, cfg)
		if err != nil {
			return nil, fmt.Errorf("parsing config: %s", err)
		}
	}

	err := cfg.applyEnvironment()
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel == "" {
		if cfg.Environment == "production" {
			cfg.LogLevel = "error"
		} else {
			cfg.LogLevel = "info"
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %s", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvironment() error {
	if port := os.Getenv("PORT"); port != "" {
		listenPort, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("parsing PORT: %s", err)
		}
		c.ListenPort = listenPort
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		c.Environment = env
	}
	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		c.SecretKey = secret
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		c.Database.URI = uri
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		c.FrontendURL = frontendURL
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	return nil
}

// AllowedCORSDomains lists the origins the browser may call this API
// from: the deployed frontend plus the local dev servers.
func (c *Config) AllowedCORSDomains() []string {
	domains := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if c.FrontendURL != "" {
		domains = append([]string{c.FrontendURL}, domains...)
	}
	return domains
}
