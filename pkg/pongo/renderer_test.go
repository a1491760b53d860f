// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pongo

import (
	"strings"
	"testing"

	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(rows int) model.SalesDocument {
	doc := model.SalesDocument{
		Title:       "Relatório de Vendas",
		GeneratedAt: "Gerado em: 31/01/2024 15:04:05",
		Header:      [4]string{"Data", "Produto", "Quantidade", "Valor Total"},
		Total:       "Total de Vendas: R$ 0,00",
	}

	for i := 0; i < rows; i++ {
		doc.Rows = append(doc.Rows, model.SalesRow{
			Date:       "30/01/2024",
			Product:    "Produto A",
			Quantity:   "10",
			TotalValue: "R$ 1.000,00",
		})
	}

	return doc
}

func TestSalesReportRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows int
	}{
		{name: "Success - empty table", rows: 0},
		{name: "Success - single row", rows: 1},
		{name: "Success - many rows", rows: 250},
	}

	r, err := NewSalesReportRenderer()
	require.NoError(t, err)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := r.Render(sampleDocument(tt.rows))
			require.NoError(t, err)

			assert.Equal(t, 1, strings.Count(out, `<tr class="header-row">`))
			assert.Equal(t, tt.rows, strings.Count(out, `<tr class="sale-row">`))
			assert.Equal(t, 4, strings.Count(out, "<th>"))
			assert.Contains(t, out, "<th>Valor Total</th>")
			assert.Contains(t, out, `<p class="total">Total de Vendas: R$ 0,00</p>`)
		})
	}
}

func TestSalesReportRenderer_DocumentOrder(t *testing.T) {
	t.Parallel()

	r, err := NewSalesReportRenderer()
	require.NoError(t, err)

	out, err := r.Render(sampleDocument(2))
	require.NoError(t, err)

	title := strings.Index(out, `<h1 class="title">`)
	generated := strings.Index(out, `<p class="generated-at">`)
	table := strings.Index(out, `<table class="sales">`)
	total := strings.Index(out, `<p class="total">`)

	assert.True(t, title < generated && generated < table && table < total)
}

func TestSalesReportRenderer_EscapesProductNames(t *testing.T) {
	t.Parallel()

	r, err := NewSalesReportRenderer()
	require.NoError(t, err)

	doc := sampleDocument(0)
	doc.Rows = []model.SalesRow{{Date: "01/01/2024", Product: "<script>x</script>", Quantity: "1", TotalValue: "R$ 1,00"}}

	out, err := r.Render(doc)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>x</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestNewRendererFromString_SyntaxError(t *testing.T) {
	t.Parallel()

	r, err := NewRendererFromString("{{ doc.Title !")

	assert.Error(t, err)
	assert.Nil(t, r)
}
