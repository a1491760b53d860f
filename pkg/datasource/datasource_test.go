// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package datasource

import (
	"context"
	"testing"
	"time"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Stub(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{"", "stub"} {
		repo, cleanup, err := New(context.Background(), Config{Provider: provider}, &log.NoneLogger{})

		require.NoError(t, err)
		require.NotNil(t, cleanup)
		assert.IsType(t, &StubRepository{}, repo)

		cleanup()
	}
}

func TestNew_UnsupportedProvider(t *testing.T) {
	t.Parallel()

	repo, cleanup, err := New(context.Background(), Config{Provider: "oracle"}, &log.NoneLogger{})

	assert.Nil(t, repo)
	assert.NotNil(t, cleanup)
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
	assert.Contains(t, err.Error(), "oracle")
}

func TestStubRepository_FetchSales(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 31, 15, 30, 0, 0, time.UTC)
	repo := NewStubRepository(func() time.Time { return now })

	records, err := repo.FetchSales(context.Background(),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Produto A", records[0].ProductName)
	assert.Equal(t, 10, records[0].Quantity)
	assert.Equal(t, "1000", records[0].TotalValue.String())
	assert.True(t, now.Equal(records[0].Date))

	assert.Equal(t, "Produto B", records[1].ProductName)
	assert.Equal(t, 5, records[1].Quantity)
	assert.Equal(t, "500", records[1].TotalValue.String())
	assert.True(t, now.AddDate(0, 0, -1).Equal(records[1].Date))
}

func TestStubRepository_IgnoresBounds(t *testing.T) {
	t.Parallel()

	repo := NewStubRepository(time.Now)

	records, err := repo.FetchSales(context.Background(), time.Time{}, time.Time{})

	require.NoError(t, err)
	assert.Len(t, records, 2)
}
