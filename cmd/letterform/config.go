package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "letterform.yaml"

// ClientConfig holds connection and output settings for the form client.
// Values load from letterform.yaml in the working directory when present;
// environment variables override file values.
type ClientConfig struct {
	ServerURL   string `yaml:"server_url"`
	OutputDir   string `yaml:"output_dir"`
	CompanyName string `yaml:"company_name"`
	Phone       string `yaml:"phone"`
}

// LoadClientConfig reads letterform.yaml if it exists and applies defaults
// and environment overrides.
func LoadClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}

	if data, err := os.ReadFile(configFileName); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configFileName, err)
		}
	}

	if v := os.Getenv("LETTERFORM_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("LETTERFORM_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8080/api"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return cfg, nil
}

// OutputPath joins the output directory with a letter filename.
func (c *ClientConfig) OutputPath(filename string) string {
	return filepath.Join(c.OutputDir, filename)
}
