// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

// Package datasource supplies the sales rows a report is built from.
package datasource

//go:generate mockgen --destination=datasource.mock.go --package=datasource --copyright_file=../../COPYRIGHT . Repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
)

// ErrUnsupportedProvider is returned by New for an unknown provider name.
var ErrUnsupportedProvider = errors.New("unsupported data source provider")

// Repository fetches the sales within [start, end]. Implementations may return zero, one or many rows.
type Repository interface {
	FetchSales(ctx context.Context, start, end time.Time) ([]model.SaleRecord, error)
}

// Config selects and configures a data source.
type Config struct {
	Provider string
	Postgres PostgresConfig
	Mongo    MongoConfig

	// CircuitBreaker wraps networked providers in a BreakerRepository. Off by default: the
	// breaker keeps state between invocations and replaces the error while open.
	CircuitBreaker bool
}

// New builds the configured data source. The returned cleanup releases its connections and is never nil.
func New(ctx context.Context, cfg Config, logger log.Logger) (Repository, func(), error) {
	noop := func() {}

	switch cfg.Provider {
	case "", constant.DataSourceStub:
		logger.Info("Using stub data source")

		return NewStubRepository(time.Now), noop, nil
	case constant.DataSourcePostgres:
		repo, err := NewPostgresRepository(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, noop, err
		}

		return withBreaker(cfg, repo, logger), repo.Close, nil
	case constant.DataSourceMongoDB:
		repo, err := NewMongoRepository(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, noop, err
		}

		return withBreaker(cfg, repo, logger), repo.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
	}
}

// withBreaker returns repo itself unless the circuit breaker is enabled.
func withBreaker(cfg Config, repo Repository, logger log.Logger) Repository {
	if !cfg.CircuitBreaker {
		return repo
	}

	logger.Infof("Circuit breaker enabled for %s data source", cfg.Provider)

	return NewBreakerRepository(cfg.Provider, repo, logger)
}
