package config

import (
	"fmt"
	"os"

	"github.com/Adhya2325/letter-generation/pkg/formatting"
	"github.com/Adhya2325/letter-generation/pkg/middleware"
	"github.com/Adhya2325/letter-generation/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "LETTERGEN_CORS_ENABLED",
	Origins:          "LETTERGEN_CORS_ORIGINS",
	AllowedMethods:   "LETTERGEN_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "LETTERGEN_CORS_ALLOWED_HEADERS",
	AllowCredentials: "LETTERGEN_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "LETTERGEN_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "LETTERGEN_OPENAPI_TITLE",
	Description: "LETTERGEN_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, request limit, CORS, and OpenAPI settings.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxRequestSize string                `toml:"max_request_size"`
	CORS           middleware.CORSConfig `toml:"cors"`
	OpenAPI        openapi.Config        `toml:"openapi"`
}

// MaxRequestSizeBytes returns the request body limit in bytes. Generation
// requests are small JSON documents; the limit guards against runaway notes.
func (c *APIConfig) MaxRequestSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestSize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestSize != "" {
		c.MaxRequestSize = overlay.MaxRequestSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestSize == "" {
		c.MaxRequestSize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("LETTERGEN_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("LETTERGEN_API_MAX_REQUEST_SIZE"); v != "" {
		c.MaxRequestSize = v
	}
}
