// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop operations such as
// database pings and HTTP server shutdown.
const DefaultTimeout = 15 * time.Second
