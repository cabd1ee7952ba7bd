package directions

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quicktrip-api/internal/domain"
)

const (
	requestTimeout = 10 * time.Second

	// Aggregation bursts several queries at one host in parallel, so the
	// connection pool is sized to keep those on warm connections.
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 30 * time.Second
)

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConnsPerHost,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	}
}

func newGetRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	return req, nil
}

// checkStatus converts a non-200 response into a *domain.ProviderError
// carrying the upstream status and body. The body is consumed either way.
func checkStatus(provider string, resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	b, _ := io.ReadAll(resp.Body)
	return &domain.ProviderError{
		Provider: provider,
		Status:   resp.StatusCode,
		Message:  strings.TrimSpace(string(b)),
	}
}
