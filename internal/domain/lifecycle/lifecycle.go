// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as DB pings and
// HTTP server drain.
const DefaultTimeout = 10 * time.Second
