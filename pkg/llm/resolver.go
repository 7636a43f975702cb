package llm

import (
	"log"
	"strings"

	"wayfarer/pkg/utils"
)

// Models known to be retired or unsafe. Resolution never hands one of these
// out; it substitutes the provider default and logs instead of failing.
var DecommissionedModels = map[string]struct{}{
	"deepseek-r1-distill-llama-70b":        {},
	"deepseek-r1-distill-llama-70b-q4_k_m": {},
}

const (
	GroqDefaultModel   = "llama-3.1-8b-instant"
	OpenAIDefaultModel = "gpt-4o-mini"
)

// GroqAllowedFallbacks are the Groq models we have vetted besides the
// default. Resolving to anything outside this set still works but is logged.
var GroqAllowedFallbacks = map[string]struct{}{
	"llama-3.1-70b-versatile":    {},
	"llama-3.2-90b-text-preview": {},
	"mixtral-8x7b":               {},
}

// ResolveModel picks the model identifier for a request. Priority order,
// first non-empty wins: explicit override, config value, static default.
// The winner is trimmed. A decommissioned winner is replaced by the default
// with a warning; it never fails the request. All three sources empty is a
// configuration error.
func ResolveModel(envOverride, configValue, fallback string, disallowed map[string]struct{}) (string, error) {
	name := strings.TrimSpace(envOverride)
	if name == "" {
		name = strings.TrimSpace(configValue)
	}
	if name == "" {
		name = strings.TrimSpace(fallback)
	}
	if name == "" {
		return "", utils.ErrNoModelConfigured
	}

	if _, retired := disallowed[name]; retired {
		log.Printf("[WARN] model %q is decommissioned, falling back to %q", name, strings.TrimSpace(fallback))
		name = strings.TrimSpace(fallback)
	}
	if name == "" {
		return "", utils.ErrNoModelConfigured
	}

	return name, nil
}

// IsVettedGroqModel reports whether name is the Groq default or one of the
// allowed fallbacks.
func IsVettedGroqModel(name string) bool {
	if name == GroqDefaultModel {
		return true
	}
	_, ok := GroqAllowedFallbacks[name]
	return ok
}
