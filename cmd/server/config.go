package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the server settings. Values are layered: defaults, then the
// YAML file, then GRAC_* environment variables (a .env file is honoured),
// then command line flags.
type Config struct {
	Addr string `yaml:"addr"`
	// Synizesis is an extra synizesis data file merged over the embedded one.
	Synizesis   string   `yaml:"synizesis"`
	LogFile     string   `yaml:"log_file"`
	CORSOrigins []string `yaml:"cors_origins"`
}

func defaultConfig() Config {
	return Config{
		Addr:        ":8080",
		CORSOrigins: []string{"*"},
	}
}

// loadConfigFile overlays the YAML file at path on c. An empty path is not
// an error.
func loadConfigFile(c *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays GRAC_* variables on c, after loading envFile into the
// environment if it exists. Variables already set win over the file.
func loadEnv(c *Config, envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	if v := os.Getenv("GRAC_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("GRAC_SYNIZESIS"); v != "" {
		c.Synizesis = v
	}
	if v := os.Getenv("GRAC_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("GRAC_CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
