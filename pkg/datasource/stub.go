// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package datasource

import (
	"context"
	"time"

	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/shopspring/decimal"
)

// StubRepository returns a fixed pair of sales regardless of the requested range.
type StubRepository struct {
	now func() time.Time
}

// NewStubRepository creates a stub whose rows are dated relative to now().
func NewStubRepository(now func() time.Time) *StubRepository {
	return &StubRepository{now: now}
}

// FetchSales ignores the bounds.
func (s *StubRepository) FetchSales(_ context.Context, _, _ time.Time) ([]model.SaleRecord, error) {
	now := s.now()

	return []model.SaleRecord{
		{
			Date:        now,
			ProductName: constant.StubProductA,
			Quantity:    constant.StubProductAQuantity,
			TotalValue:  decimal.NewFromInt(constant.StubProductATotal),
		},
		{
			Date:        now.AddDate(0, 0, -1),
			ProductName: constant.StubProductB,
			Quantity:    constant.StubProductBQuantity,
			TotalValue:  decimal.NewFromInt(constant.StubProductBTotal),
		},
	}, nil
}
