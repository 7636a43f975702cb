package llm

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"wayfarer/pkg/config"
	"wayfarer/pkg/utils"
)

type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderOpenAI Provider = "openai"
)

// Chat settings are fixed; a fresh handle is built per call and nothing here
// is cached.
const (
	ChatTemperature = 0.2
	RequestTimeout  = 60 * time.Second
)

// Groq exposes an OpenAI-compatible API, so both providers share one SDK.
const groqBaseURL = "https://api.groq.com/openai/v1"

// EnvLookup reads an environment variable. Injected so construction can be
// tested without touching process state.
type EnvLookup func(key string) string

// Client is an opaque handle to one provider/model pair.
type Client struct {
	api      *openai.Client
	provider Provider
	model    string
}

// NewClient builds a handle for the given provider bound to the already
// resolved model name. It refuses to proceed when the provider's API key is
// absent; that is the one place this system must fail instead of degrading.
func NewClient(provider Provider, resolvedModel string, lookup EnvLookup) (*Client, error) {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}

	var cfg openai.ClientConfig
	switch provider {
	case ProviderGroq:
		key := lookup("GROQ_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: GROQ_API_KEY", utils.ErrMissingAPIKey)
		}
		cfg = openai.DefaultConfig(key)
		cfg.BaseURL = groqBaseURL
		if !IsVettedGroqModel(resolvedModel) {
			log.Printf("[INFO] using custom groq model: %s", resolvedModel)
		}
	case ProviderOpenAI:
		key := lookup("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY", utils.ErrMissingAPIKey)
		}
		cfg = openai.DefaultConfig(key)
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnsupportedProvider, provider)
	}

	cfg.HTTPClient = &http.Client{Timeout: RequestTimeout}

	return &Client{
		api:      openai.NewClientWithConfig(cfg),
		provider: provider,
		model:    resolvedModel,
	}, nil
}

// NewClientFromConfig resolves the model for cfg's provider (env override,
// config file value, static default, in that order) and builds a handle.
// Resolution stays pure; only this constructor reads the environment.
func NewClientFromConfig(cfg config.Config, lookup EnvLookup) (*Client, error) {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}

	provider := Provider(cfg.LLM.Provider)
	var model string
	var err error

	switch provider {
	case ProviderGroq:
		model, err = ResolveModel(lookup("GROQ_MODEL"), cfg.LLM.Groq.ModelName, GroqDefaultModel, DecommissionedModels)
	case ProviderOpenAI:
		model, err = ResolveModel(lookup("OPENAI_MODEL"), cfg.LLM.OpenAI.ModelName, OpenAIDefaultModel, DecommissionedModels)
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnsupportedProvider, provider)
	}
	if err != nil {
		return nil, err
	}

	return NewClient(provider, model, lookup)
}

func (c *Client) Provider() Provider { return c.provider }

func (c *Client) Model() string { return c.model }

// Complete runs one chat completion for the question and returns the answer
// text.
func (c *Client) Complete(ctx context.Context, question string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: ChatTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", c.provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s chat completion: no choices returned", c.provider)
	}
	return resp.Choices[0].Message.Content, nil
}
