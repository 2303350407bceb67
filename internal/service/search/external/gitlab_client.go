package external

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gitlabsearch/internal/config"
	"gitlabsearch/internal/domain"
	models "gitlabsearch/internal/domain/models/search"
	"gitlabsearch/internal/domain/services"
	"gitlabsearch/internal/httputil"

	"github.com/google/uuid"
)

const (
	// DefaultGitLabBaseURL is the public GitLab API root
	DefaultGitLabBaseURL = "https://gitlab.com/api/v4"

	// RequestIDHeader carries the per-request correlation ID
	RequestIDHeader = "X-Request-Id"
)

var _ services.HTTPClient = (*GitLabClient)(nil)

// GitLabClient implements HTTPClient over net/http.
// It performs no authentication; callers that need it supply an
// *http.Client whose Transport adds credentials.
type GitLabClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGitLabClient creates a client for baseURL with the given timeout.
func NewGitLabClient(baseURL string, timeout time.Duration, logger *slog.Logger) *GitLabClient {
	return NewGitLabClientWithHTTPClient(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewGitLabClientWithHTTPClient creates a client that sends requests through httpClient.
func NewGitLabClientWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *GitLabClient {
	if baseURL == "" {
		baseURL = DefaultGitLabBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GitLabClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get issues GET <baseURL>/<path>?<query> and returns the raw response.
// Non-2xx statuses return *domain.APIError.
func (c *GitLabClient) Get(ctx context.Context, path string, query models.Query) (*models.Response, error) {
	target, err := httputil.BuildURL(c.baseURL, path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := httputil.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // Error ignored: response consumed

	body, err := httputil.ReadBody(resp, config.MaxResponseBytes)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gitlab request completed",
		"request_id", requestID,
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if !httputil.IsSuccess(resp.StatusCode) {
		return nil, &domain.APIError{
			Status: resp.StatusCode,
			Body:   httputil.Truncate(string(body), config.MaxErrorBodyLength),
		}
	}

	return &models.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
