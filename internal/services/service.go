// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"time"

	"github.com/LerianStudio/sales-report/pkg/datasource"
	"github.com/LerianStudio/sales-report/pkg/metrics"
	"github.com/LerianStudio/sales-report/pkg/pdf"
	"github.com/LerianStudio/sales-report/pkg/pongo"
	"github.com/LerianStudio/sales-report/pkg/storage"
)

// UseCase generates a sales report, stores it and hands back a temporary download link.
type UseCase struct {
	// DataSource supplies the sales rows for the requested period.
	DataSource datasource.Repository

	// Renderer lays the sales document out as an HTML page.
	Renderer pongo.HTMLRenderer

	// PdfPool prints the HTML page into PDF bytes.
	PdfPool pdf.PDFGenerator

	// Storage is the object store the PDF is uploaded to and presigned from.
	Storage storage.ObjectStorage

	// Metrics records generation counters. Nil means no-op.
	Metrics *metrics.ReportMetrics

	// Location is the zone used for the file name and the "Gerado em" line. Nil means time.Local.
	Location *time.Location

	// Now returns the current instant. Nil means time.Now.
	Now func() time.Time
}

func (uc *UseCase) now() time.Time {
	now := time.Now
	if uc.Now != nil {
		now = uc.Now
	}

	location := time.Local
	if uc.Location != nil {
		location = uc.Location
	}

	return now().In(location)
}

func (uc *UseCase) metrics() *metrics.ReportMetrics {
	if uc.Metrics == nil {
		return metrics.NoopReportMetrics()
	}

	return uc.Metrics
}
