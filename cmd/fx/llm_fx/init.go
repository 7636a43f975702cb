package llm_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
	"wayfarer/pkg/config"
	"wayfarer/pkg/llm"
)

var Module = fx.Provide(
	ProvideClientBuilder,
	ProvideQueryController)

// ProvideClientBuilder exposes LLM construction as a builder so each query
// gets a fresh handle. Model resolution runs inside the builder because the
// selection is computed per call, never cached.
func ProvideClientBuilder(cfg config.Config) controllers.ClientBuilder {
	log.Printf("LLM provider: %s", cfg.LLM.Provider)
	return func() (*llm.Client, error) {
		return llm.NewClientFromConfig(cfg, os.Getenv)
	}
}

func ProvideQueryController(buildClient controllers.ClientBuilder) *controllers.QueryController {
	return controllers.NewQueryController(buildClient)
}
