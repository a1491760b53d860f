// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package datasource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/sony/gobreaker"
)

// BreakerRepository fast-fails FetchSales while the wrapped data source keeps failing.
// While the breaker is closed the wrapped error is returned untouched.
type BreakerRepository struct {
	name    string
	next    Repository
	breaker *gobreaker.CircuitBreaker
	logger  log.Logger
}

// NewBreakerRepository wraps next with a circuit breaker named after the provider.
func NewBreakerRepository(name string, next Repository, logger log.Logger) *BreakerRepository {
	br := &BreakerRepository{
		name:   name,
		next:   next,
		logger: logger,
	}

	br.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        fmt.Sprintf("datasource-%s", name),
		MaxRequests: constant.CircuitBreakerMaxRequests,
		Interval:    constant.CircuitBreakerInterval,
		Timeout:     constant.CircuitBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= constant.CircuitBreakerThreshold
		},
		OnStateChange: br.onStateChange,
	})

	return br
}

func (br *BreakerRepository) onStateChange(name string, from, to gobreaker.State) {
	switch to {
	case gobreaker.StateOpen:
		br.logger.Errorf("Circuit Breaker [%s] OPENED - data source is unhealthy, requests will fast-fail", name)
	case gobreaker.StateHalfOpen:
		br.logger.Infof("Circuit Breaker [%s] HALF-OPEN - testing data source recovery", name)
	default:
		br.logger.Infof("Circuit Breaker [%s] state changed: %s -> %s", name, from.String(), to.String())
	}
}

// FetchSales runs the wrapped FetchSales through the breaker.
func (br *BreakerRepository) FetchSales(ctx context.Context, start, end time.Time) ([]model.SaleRecord, error) {
	result, err := br.breaker.Execute(func() (any, error) {
		return br.next.FetchSales(ctx, start, end)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState):
			br.logger.Warnf("Circuit breaker [%s] is OPEN - request rejected immediately", br.name)
			return nil, fmt.Errorf("sales data source %s is currently unavailable (circuit breaker open): %w", br.name, err)
		case errors.Is(err, gobreaker.ErrTooManyRequests):
			br.logger.Warnf("Circuit breaker [%s] is HALF-OPEN - too many test requests", br.name)
			return nil, fmt.Errorf("sales data source %s is recovering (too many requests): %w", br.name, err)
		}

		return nil, err
	}

	records, _ := result.([]model.SaleRecord)

	return records, nil
}

// State reports the breaker state as closed, open or half-open.
func (br *BreakerRepository) State() string {
	switch br.breaker.State() {
	case gobreaker.StateOpen:
		return constant.CircuitBreakerStateOpen
	case gobreaker.StateHalfOpen:
		return constant.CircuitBreakerStateHalfOpen
	default:
		return constant.CircuitBreakerStateClosed
	}
}
