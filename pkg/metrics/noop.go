// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package metrics

import (
	"go.opentelemetry.io/otel/metric/noop"
)

// NoopReportMetrics returns instruments that discard every measurement.
func NoopReportMetrics() *ReportMetrics {
	meter := noop.NewMeterProvider().Meter("noop")

	// noop meter never returns errors.
	generatedTotal, _ := meter.Int64Counter("sales_reports_generated_total")
	failuresTotal, _ := meter.Int64Counter("sales_report_failures_total")
	sizeBytes, _ := meter.Int64Histogram("sales_report_pdf_size_bytes")
	duration, _ := meter.Float64Histogram("sales_report_generation_duration_seconds")

	return &ReportMetrics{
		ReportsGeneratedTotal: generatedTotal,
		ReportFailuresTotal:   failuresTotal,
		ReportSizeBytes:       sizeBytes,
		ReportDuration:        duration,
	}
}
