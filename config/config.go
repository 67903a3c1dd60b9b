// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads cmd/resp-cli's configuration from a YAML file and a
// .env-style dotenv file, with environment variables taking precedence
// over both. It is deliberately small: respkit's core library never reads
// configuration itself, only the CLI front end does.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds cmd/resp-cli's settings.
type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Auth struct {
		Username string `yaml:"username"`
		Protocol int    `yaml:"protocol"`
	} `yaml:"auth"`
}

// Addr returns the configured server address, defaulting to localhost:6379.
func (c *Config) Addr() string {
	if c.Server.Address == "" {
		return "127.0.0.1:6379"
	}
	return c.Server.Address
}

// Load reads path as YAML. A missing file is not an error: callers get a
// zero-value Config back, to be filled in by LoadEnvOverrides and flags.
func Load(path string) (*Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotenv loads envPath into the process environment via godotenv,
// without overriding variables already set. A missing file is not an error.
func LoadDotenv(envPath string) error {
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(envPath)
}

// LoadEnvOverrides applies RESPKIT_* environment variables onto cfg,
// taking precedence over whatever the YAML file set.
func LoadEnvOverrides(cfg *Config) {
	if v := os.Getenv("RESPKIT_ADDR"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("RESPKIT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RESPKIT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("RESPKIT_USERNAME"); v != "" {
		cfg.Auth.Username = v
	}
	if v := os.Getenv("RESPKIT_PROTOCOL"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Auth.Protocol = n
		}
	}
}
