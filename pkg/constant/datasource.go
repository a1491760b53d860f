// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

// Data source providers
const (
	DataSourceStub     = "stub"
	DataSourcePostgres = "postgres"
	DataSourceMongoDB  = "mongodb"

	DefaultSalesTable       = "sales"
	DefaultSalesCollection  = "sales"
	DefaultPostgresSSLMode  = "disable"
	MongoDefaultMaxPoolSize = 10
)

// Stub data source rows
const (
	StubProductA         = "Produto A"
	StubProductAQuantity = 10
	StubProductATotal    = 1000
	StubProductB         = "Produto B"
	StubProductBQuantity = 5
	StubProductBTotal    = 500
)

// Data source circuit breaker
const (
	CircuitBreakerMaxRequests uint32 = 3
	CircuitBreakerInterval           = 2 * time.Minute
	CircuitBreakerTimeout            = 30 * time.Second
	CircuitBreakerThreshold   uint32 = 5

	CircuitBreakerStateClosed   = "closed"
	CircuitBreakerStateOpen     = "open"
	CircuitBreakerStateHalfOpen = "half-open"
)
