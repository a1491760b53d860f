// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"time"

	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/format"
	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/shopspring/decimal"
)

// BuildSalesDocument lays out one table row per record, in input order, and the grand total.
// Record dates are shown in the zone of generatedAt.
func BuildSalesDocument(records []model.SaleRecord, generatedAt time.Time) model.SalesDocument {
	rows := make([]model.SalesRow, 0, len(records))
	total := decimal.Zero

	for _, record := range records {
		rows = append(rows, model.SalesRow{
			Date:       format.Date(record.Date.In(generatedAt.Location())),
			Product:    record.ProductName,
			Quantity:   format.Integer(record.Quantity),
			TotalValue: format.Currency(record.TotalValue),
		})

		total = total.Add(record.TotalValue)
	}

	return model.SalesDocument{
		Title:       constant.ReportTitle,
		GeneratedAt: constant.ReportGeneratedLabel + ": " + format.Timestamp(generatedAt),
		Header:      constant.ReportTableHeader,
		Rows:        rows,
		Total:       constant.ReportTotalLabel + ": " + format.Currency(total),
	}
}

// ReportFileName names the object after the generation instant, e.g. relatorio_20240131_153000.pdf.
func ReportFileName(t time.Time) string {
	return constant.ReportFilePrefix + t.Format(constant.ReportFileTimeLayout) + constant.ReportFileExtension
}
