package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for sociomap.
type Config struct {
	Data      DataConfig      `toml:"data"`
	Server    ServerConfig    `toml:"server"`
	Assistant AssistantConfig `toml:"assistant"`
	Import    ImportConfig    `toml:"import"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type AssistantConfig struct {
	Model     string  `toml:"model"`
	MaxTokens int     `toml:"max_tokens"`
	RateLimit float64 `toml:"rate_limit"`
}

type ImportConfig struct {
	RateLimit float64 `toml:"rate_limit"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data:      DataConfig{Dir: "data"},
		Server:    ServerConfig{Host: "localhost", Port: 8080},
		Assistant: AssistantConfig{Model: "gemini-1.5-flash", MaxTokens: 1024, RateLimit: 1.0},
		Import:    ImportConfig{RateLimit: 1.0},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
