package config_fx

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfarer/pkg/config"
)

var Module = fx.Provide(ProvideConfig)

// ProvideConfig loads .env (optional) and the YAML config file, giving every
// other module one explicit configuration value to depend on.
func ProvideConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	path := os.Getenv("WAYFARER_CONFIG")
	if path == "" {
		path = "config/config.yaml"
	}
	return config.Load(path)
}
