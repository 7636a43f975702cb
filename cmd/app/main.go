package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"wayfarer/cmd/fx/config_fx"
	"wayfarer/cmd/fx/export_fx"
	"wayfarer/cmd/fx/llm_fx"
	"wayfarer/cmd/fx/planner_fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/pkg/config"
	"wayfarer/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		llm_fx.Module,
		planner_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at %s", cfg.HTTP.Addr)
				if err := engine.Run(cfg.HTTP.Addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	queryController *controllers.QueryController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, queryController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	queryController *controllers.QueryController,
	exportController *controllers.ExportController) {

	r.POST("/query", queryController.QueryHandler)

	plansGroup := r.Group("/plans")
	plansGroup.POST("", planController.GeneratePlanHandler)
	plansGroup.GET("/geocode", planController.GeocodeHandler)

	exportsGroup := r.Group("/exports")
	exportsGroup.POST("/markdown", exportController.MarkdownExportHandler)
	exportsGroup.POST("/pdf", exportController.PDFExportHandler)
}
