package services

import (
	"context"

	models "gitlabsearch/internal/domain/models/search"
)

// SearchService runs validated searches against the remote API
type SearchService interface {
	// Search validates params and issues a single GET to the search endpoint.
	// Validation failures return before any request is made; request
	// failures are returned as produced by the HTTPClient.
	Search(ctx context.Context, params models.Params) (*models.Response, error)
}

// HTTPClient is the transport collaborator used by SearchService
type HTTPClient interface {
	Get(ctx context.Context, path string, query models.Query) (*models.Response, error)
}
