package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is everything the process needs at startup. Values come from an
// optional synth.yaml, then environment variables override. A missing
// GOOGLE_API_KEY is the one startup-fatal condition.
type Config struct {
	Port       string `yaml:"port"`
	APIKey     string `yaml:"api_key,omitempty"`
	Model      string `yaml:"model"`
	HistoryDir string `yaml:"history_dir"`
	DevMode    bool   `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:       "8080",
		Model:      "gemini-1.5-flash",
		HistoryDir: "prompt_histories",
	}
}

// Load resolves the config: .env file (if present), then synth.yaml (if
// present), then process environment. APP_MODE=dev turns on diagnostic
// detail in error responses.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if err := readFile(cfg, "synth.yaml"); err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("MODEL_NAME"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("HISTORY_DIR"); v != "" {
		cfg.HistoryDir = v
	}
	cfg.DevMode = os.Getenv("APP_MODE") == "dev"

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY not found")
	}

	return cfg, nil
}

func readFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
