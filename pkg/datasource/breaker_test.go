// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package datasource

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBreakerRepository_PassesThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := NewMockRepository(ctrl)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	records := []model.SaleRecord{{ProductName: "Produto A", Quantity: 1}}
	queryErr := errors.New("querying sales: connection refused")

	gomock.InOrder(
		next.EXPECT().FetchSales(gomock.Any(), start, end).Return(records, nil),
		next.EXPECT().FetchSales(gomock.Any(), start, end).Return(nil, queryErr),
	)

	br := NewBreakerRepository(constant.DataSourcePostgres, next, &log.NoneLogger{})

	got, err := br.FetchSales(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	_, err = br.FetchSales(context.Background(), start, end)
	assert.Equal(t, queryErr, err)
	assert.Equal(t, constant.CircuitBreakerStateClosed, br.State())
}

func TestBreakerRepository_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := NewMockRepository(ctrl)
	next.EXPECT().
		FetchSales(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("server selection timeout")).
		Times(int(constant.CircuitBreakerThreshold))

	br := NewBreakerRepository(constant.DataSourceMongoDB, next, &log.NoneLogger{})

	for i := 0; i < int(constant.CircuitBreakerThreshold); i++ {
		_, err := br.FetchSales(context.Background(), time.Time{}, time.Time{})
		require.Error(t, err)
	}

	assert.Equal(t, constant.CircuitBreakerStateOpen, br.State())

	_, err := br.FetchSales(context.Background(), time.Time{}, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Contains(t, err.Error(), "sales data source mongodb is currently unavailable")
}

func TestWithBreaker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		enabled       bool
		expectBreaker bool
	}{
		{name: "disabled by default returns the provider itself", enabled: false, expectBreaker: false},
		{name: "enabled wraps the provider", enabled: true, expectBreaker: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			next := NewMockRepository(ctrl)
			cfg := Config{Provider: constant.DataSourcePostgres, CircuitBreaker: tt.enabled}

			repo := withBreaker(cfg, next, &log.NoneLogger{})

			_, isBreaker := repo.(*BreakerRepository)
			assert.Equal(t, tt.expectBreaker, isBreaker)
		})
	}
}

func TestWithBreaker_DisabledKeepsDriverErrorAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := NewMockRepository(ctrl)
	driverErr := errors.New("querying sales: connection refused")
	records := []model.SaleRecord{{ProductName: "Produto A", Quantity: 1}}

	failures := int(constant.CircuitBreakerThreshold)

	gomock.InOrder(
		next.EXPECT().FetchSales(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, driverErr).Times(failures),
		next.EXPECT().FetchSales(gomock.Any(), gomock.Any(), gomock.Any()).Return(records, nil),
	)

	repo := withBreaker(Config{Provider: constant.DataSourcePostgres}, next, &log.NoneLogger{})

	for i := 0; i < failures; i++ {
		_, err := repo.FetchSales(context.Background(), time.Time{}, time.Time{})
		assert.Equal(t, driverErr, err)
	}

	got, err := repo.FetchSales(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
