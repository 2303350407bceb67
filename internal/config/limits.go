package config

import "time"

const (
	// MaxResponseBytes caps how much of a response body the client reads.
	// Search results are paginated server-side (20 per page by default),
	// so a legitimate page stays far below this.
	MaxResponseBytes = 10 << 20

	// MaxErrorBodyLength is how much of a non-2xx body is kept in APIError.
	MaxErrorBodyLength = 1024

	// DefaultTimeout is the HTTP timeout when GITLAB_TIMEOUT is not set.
	DefaultTimeout = 30 * time.Second

	// DefaultLogMaxFiles is how many log files SetupLogFile keeps.
	DefaultLogMaxFiles = 10
)
