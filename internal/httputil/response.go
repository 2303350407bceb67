package httputil

import (
	"fmt"
	"io"
	"net/http"
)

// ReadBody reads at most limit bytes of the response body.
// Bodies larger than limit are an error rather than silently truncated.
func ReadBody(resp *http.Response, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("response body exceeds %d bytes", limit)
	}
	return body, nil
}

// IsSuccess reports whether status is a 2xx code
func IsSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// Truncate shortens s to at most n bytes for inclusion in error messages
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
