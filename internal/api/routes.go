package api

import (
	"fmt"
	"net/http"

	"github.com/Adhya2325/letter-generation/internal/config"
	"github.com/Adhya2325/letter-generation/pkg/openapi"
	"github.com/Adhya2325/letter-generation/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) error {
	routes.Register(
		mux,
		domain.Instructions.Handler().Routes(),
		domain.Letters.Handler(cfg.API.MaxRequestSizeBytes()).Routes(),
	)

	spec := buildSpec(cfg)
	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}
