// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

// Report storage
const (
	// DefaultReportBucket is the destination bucket used when REPORT_BUCKET is not set.
	DefaultReportBucket = "bucket-sample-lambda-pdf"

	// ReportFilePrefix and ReportFileTimeLayout build names like relatorio_20240131_153000.pdf.
	ReportFilePrefix     = "relatorio_"
	ReportFileTimeLayout = "20060102_150405"
	ReportFileExtension  = ".pdf"
	ReportContentType    = "application/pdf"

	// PresignExpiry is how long a download link stays valid after issuance.
	PresignExpiry = 1 * time.Hour
)

// Report document texts
const (
	ReportTitle          = "Relatório de Vendas"
	ReportGeneratedLabel = "Gerado em"
	ReportTotalLabel     = "Total de Vendas"
	ReportSuccessMessage = "Relatório gerado com sucesso"
	CurrencySymbol       = "R$"

	ReportDateLayout      = "02/01/2006"
	ReportTimestampLayout = "02/01/2006 15:04:05"
)

// ReportTableHeader is the fixed 4-column header of the sales table.
var ReportTableHeader = [4]string{"Data", "Produto", "Quantidade", "Valor Total"}
