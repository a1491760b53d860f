// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

// Package metrics holds the OTel instruments recorded while generating reports.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// StepAttribute names the pipeline step a failure happened in.
const StepAttribute = "step"

// ReportMetrics holds the report instruments.
// All fields are non-nil after NewReportMetrics or NoopReportMetrics.
type ReportMetrics struct {
	// ReportsGeneratedTotal counts reports uploaded and linked successfully.
	ReportsGeneratedTotal metric.Int64Counter

	// ReportFailuresTotal counts failed invocations, segmented by step.
	ReportFailuresTotal metric.Int64Counter

	// ReportSizeBytes records the size of each uploaded PDF.
	ReportSizeBytes metric.Int64Histogram

	// ReportDuration records the end-to-end generation time.
	ReportDuration metric.Float64Histogram
}

// NewReportMetrics registers the instruments on meter.
func NewReportMetrics(meter metric.Meter) (*ReportMetrics, error) {
	generatedTotal, err := meter.Int64Counter(
		"sales_reports_generated_total",
		metric.WithDescription("Sales reports generated and uploaded"),
		metric.WithUnit("{report}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create sales_reports_generated_total counter: %w", err)
	}

	failuresTotal, err := meter.Int64Counter(
		"sales_report_failures_total",
		metric.WithDescription("Sales report invocations that failed, per step"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create sales_report_failures_total counter: %w", err)
	}

	sizeBytes, err := meter.Int64Histogram(
		"sales_report_pdf_size_bytes",
		metric.WithDescription("Size of the generated PDF documents"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("create sales_report_pdf_size_bytes histogram: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"sales_report_generation_duration_seconds",
		metric.WithDescription("Time spent generating a sales report"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create sales_report_generation_duration_seconds histogram: %w", err)
	}

	return &ReportMetrics{
		ReportsGeneratedTotal: generatedTotal,
		ReportFailuresTotal:   failuresTotal,
		ReportSizeBytes:       sizeBytes,
		ReportDuration:        duration,
	}, nil
}

// StepOption tags a failure with the step it happened in.
func StepOption(step string) metric.AddOption {
	return metric.WithAttributes(attribute.String(StepAttribute, step))
}
