package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wayfarer/pkg/utils"
)

type BackendClientInterface interface {
	Ask(ctx context.Context, question string) (string, error)
}

// QueryBackendClient posts questions to the text-generation backend. One
// synchronous request, no retries; the transport timeout is the only bound
// on wait time.
type QueryBackendClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewQueryBackendClient(baseURL string, timeout time.Duration) BackendClientInterface {
	return &QueryBackendClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *QueryBackendClient) Ask(ctx context.Context, question string) (string, error) {
	payload, err := json.Marshal(map[string]string{"question": question})
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrBackendRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrBackendRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrBackendRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrBackendRequest, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Non-200 bodies are surfaced verbatim to the caller.
		return "", fmt.Errorf("%w: status %d: %s", utils.ErrBackendRequest, resp.StatusCode, string(body))
	}

	var parsed struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", utils.ErrBackendRequest, err)
	}
	return parsed.Answer, nil
}
