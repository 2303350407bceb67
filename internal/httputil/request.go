package httputil

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildURL joins baseURL and path and encodes query as the URL query string.
// Keys are encoded in sorted order. Existing query parameters on baseURL are kept.
func BuildURL(baseURL, path string, query map[string]string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")

	values := u.Query()
	for k, v := range query {
		values.Set(k, v)
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}
