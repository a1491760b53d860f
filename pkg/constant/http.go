// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

// Local HTTP harness
const (
	// ServerShutdownTimeout bounds how long in-flight requests may finish after SIGINT/SIGTERM.
	ServerShutdownTimeout = 30 * time.Second

	// ReadinessCheckTimeout bounds the bucket probe behind GET /ready.
	ReadinessCheckTimeout = 2 * time.Second

	// RequestIDHeader carries the caller's request id, echoed back on every response.
	RequestIDHeader = "X-Request-Id"
)
