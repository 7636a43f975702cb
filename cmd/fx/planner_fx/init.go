package planner_fx

import (
	"time"

	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/infra"
	"wayfarer/internal/services"
	"wayfarer/pkg/config"
)

var Module = fx.Provide(
	ProvideBackendClient,
	ProvideGeocodeService,
	services.NewPromptService,
	services.NewAnalyzerService,
	services.NewPlannerService,
	controllers.NewPlanController)

func ProvideBackendClient(cfg config.Config) infra.BackendClientInterface {
	return infra.NewQueryBackendClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)
}

func ProvideGeocodeService(cfg config.Config) services.GeocodeServiceInterface {
	return services.NewGeocodeService(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent)
}
