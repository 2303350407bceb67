package search

import (
	"context"
	"log/slog"

	models "gitlabsearch/internal/domain/models/search"
	searchSvc "gitlabsearch/internal/domain/services"
)

// searchPath is the endpoint path relative to the API base URL
const searchPath = "search"

// searchService implements the SearchService interface
type searchService struct {
	client searchSvc.HTTPClient
	logger *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(client searchSvc.HTTPClient, logger *slog.Logger) searchSvc.SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		client: client,
		logger: logger,
	}
}

// Search validates params and issues exactly one GET to the search endpoint.
// Errors from the client are returned unwrapped.
func (s *searchService) Search(ctx context.Context, params models.Params) (*models.Response, error) {
	query, err := Validate(params)
	if err != nil {
		s.logger.Debug("search params rejected", "error", err)
		return nil, err
	}

	s.logger.Debug("dispatching search",
		"path", searchPath,
		"params", len(query),
	)

	return s.client.Get(ctx, searchPath, query)
}
