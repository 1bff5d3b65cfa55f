package instructions

import "os"

// Config holds canonical instruction document settings.
type Config struct {
	// Path points at an externally authored canonical instruction document.
	// Empty means the embedded default document.
	Path string `toml:"path"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Path string
}

// Finalize applies environment variable overrides.
func (c *Config) Finalize(env *Env) error {
	if env != nil && env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}
