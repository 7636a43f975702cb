package export_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/services"
)

var Module = fx.Provide(
	services.NewExportService,
	controllers.NewExportController)
