// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/Adhya2325/letter-generation/internal/config"
	"github.com/Adhya2325/letter-generation/internal/infrastructure"
	"github.com/Adhya2325/letter-generation/pkg/formatting"
	"github.com/Adhya2325/letter-generation/pkg/middleware"
	"github.com/Adhya2325/letter-generation/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	runtime.Logger.Info(
		"api module initialized",
		"base_path", cfg.API.BasePath,
		"max_request_size", formatting.FormatBytes(cfg.API.MaxRequestSizeBytes(), 0),
	)

	return m, nil
}
