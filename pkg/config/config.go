package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is loaded once at startup and passed explicitly to whichever
// component needs it. There is no ambient global.
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Backend struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"backend"`
	Geocode struct {
		BaseURL   string `yaml:"base_url"`
		UserAgent string `yaml:"user_agent"`
	} `yaml:"geocode"`
	LLM struct {
		Provider string `yaml:"provider"`
		Groq     struct {
			ModelName string `yaml:"model_name"`
		} `yaml:"groq"`
		OpenAI struct {
			ModelName string `yaml:"model_name"`
		} `yaml:"openai"`
	} `yaml:"llm"`
}

// Load reads the optional YAML config file, then applies environment
// overrides and defaults. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to env and defaults
		default:
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg.HTTP.Addr = envOrDefault("WAYFARER_HTTP_ADDR", defaultStr(cfg.HTTP.Addr, ":8080"))
	cfg.Backend.BaseURL = envOrDefault("WAYFARER_BACKEND_URL", defaultStr(cfg.Backend.BaseURL, "http://localhost:8000"))
	cfg.Backend.TimeoutSeconds = envOrDefaultInt("WAYFARER_BACKEND_TIMEOUT", defaultInt(cfg.Backend.TimeoutSeconds, 120))
	cfg.Geocode.BaseURL = envOrDefault("WAYFARER_GEOCODE_URL", defaultStr(cfg.Geocode.BaseURL, "https://nominatim.openstreetmap.org/search"))
	cfg.Geocode.UserAgent = envOrDefault("WAYFARER_GEOCODE_AGENT", defaultStr(cfg.Geocode.UserAgent, "wayfarer"))
	cfg.LLM.Provider = envOrDefault("LLM_PROVIDER", defaultStr(cfg.LLM.Provider, "groq"))

	return cfg, nil
}

func defaultStr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func defaultInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
