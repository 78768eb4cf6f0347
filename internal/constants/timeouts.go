package constants

import "time"

const (
	// Timeout of a single outbound request, including reading the body
	RequestTimeout = 10 * time.Second

	// Grace period for in-flight requests on shutdown
	ShutdownTimeout = 5 * time.Second
)
