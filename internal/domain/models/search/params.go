package search

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Scope values accepted by the search endpoint
const (
	ScopeProjects      = "projects"
	ScopeIssues        = "issues"
	ScopeMergeRequests = "merge_requests"
	ScopeMilestones    = "milestones"
	ScopeSnippetTitles = "snippet_titles"
	ScopeUsers         = "users"
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// OrderByCreatedAt is the only ordering the search endpoint accepts
const OrderByCreatedAt = "created_at"

// Params is the caller-supplied set of raw search options
type Params map[string]Value

// ParamsFromMap converts a loosely typed mapping into Params
func ParamsFromMap(raw map[string]any) (Params, error) {
	params := make(Params, len(raw))
	for name, v := range raw {
		value, err := ValueOf(v)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		params[name] = value
	}
	return params, nil
}

// Query is the normalized parameter set sent as URL query parameters
type Query map[string]string

// Response is the undecoded result of an HTTP call
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
