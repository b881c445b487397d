package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// EmailAccount is one preconfigured outbound identity. Manual sends can pick
// any configured account; the selected account supplies both the SMTP
// credentials and the logged from address.
type EmailAccount struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Config holds all configuration settings
type Config struct {
	Server struct {
		Port int    `json:"port"`
		Host string `json:"host"`
	} `json:"server"`
	Database struct {
		DSN string `json:"dsn"`
	} `json:"database"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
		FromName string `json:"from_name"`
	} `json:"smtp"`
	App struct {
		// BaseURL is the externally visible origin used to build
		// unsubscribe links, without a trailing slash.
		BaseURL string `json:"base_url"`
	} `json:"app"`
	Accounts []EmailAccount `json:"accounts"`
	Logging  struct {
		Level string `json:"level"`
		Path  string `json:"path"`
	} `json:"logging"`
}

// LoadConfig loads configuration from a JSON file. A .env file next to the
// process, if present, is loaded first; environment variables then override
// the secrets and the public base URL so credentials can stay out of the
// config file.
func LoadConfig(path string) (*Config, error) {
	// Validate path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return nil, fmt.Errorf("config path must be absolute")
	}

	// Check if file exists and is a regular file
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config file error: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close config file", zap.Error(closeErr))
		}
	}()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}

	config.applyEnvOverrides()

	return &config, nil
}

// applyEnvOverrides lets environment variables take precedence for secrets
// and deploy-specific values. Missing .env is not an error.
func (c *Config) applyEnvOverrides() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.SMTP.Port = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		c.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		c.SMTP.From = v
	}
	if v := os.Getenv("APP_URL"); v != "" {
		c.App.BaseURL = v
	}
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Server.Port = 8080
	config.Server.Host = "localhost"
	config.Database.DSN = "file:emor.db?cache=shared&mode=rwc"
	config.SMTP.Host = "smtp.example.com"
	config.SMTP.Port = 465
	config.SMTP.From = "inquiries@emorai.com"
	config.SMTP.FromName = "EMOR Inquiries"
	config.App.BaseURL = "https://emorai.com"
	config.Accounts = []EmailAccount{
		{ID: "1", Label: "Inquiries", Email: "inquiries@emorai.com"},
	}
	config.Logging.Level = "info"
	config.Logging.Path = "server.log"
	config.applyEnvOverrides()
	return config
}
