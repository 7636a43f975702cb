package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid trip request")
	ErrMissingAPIKey       = errors.New("required api key is not set")
	ErrNoModelConfigured   = errors.New("no model name configured")
	ErrUnsupportedProvider = errors.New("unsupported llm provider")
	ErrBackendRequest      = errors.New("backend request failed")
	ErrLocationNotFound    = errors.New("location not found")
)
