// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"
	"time"

	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/format"
	"github.com/LerianStudio/sales-report/pkg/metrics"
	"github.com/LerianStudio/sales-report/pkg/model"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOtel "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Pipeline steps, used for span names and failure metrics.
const (
	stepFetchData  = "fetch_data"
	stepRender     = "render"
	stepSaveReport = "save_report"
	stepPresign    = "presign"
)

// GenerateReport fetches the sales of the requested period, renders them into a PDF, uploads it
// and returns a download link valid for one hour. A failing step aborts the invocation and its
// error is returned unchanged; an object already uploaded is left in place.
func (uc *UseCase) GenerateReport(ctx context.Context, request model.ReportRequest) (*model.ReportResult, error) {
	logger, tracer, reqID, _ := libCommons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.generate_report")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqID),
		attribute.String("app.request.start_date", request.StartDate.String()),
		attribute.String("app.request.end_date", request.EndDate.String()),
	)

	startedAt := time.Now()

	logger.Infof("Processando relatório para o período: %s até %s", format.Date(request.StartDate), format.Date(request.EndDate))

	records, err := uc.fetchData(ctx, tracer, request)
	if err != nil {
		return nil, uc.fail(ctx, &span, logger, stepFetchData, err)
	}

	generatedAt := uc.now()

	report, err := uc.renderReport(ctx, tracer, BuildSalesDocument(records, generatedAt), generatedAt)
	if err != nil {
		return nil, uc.fail(ctx, &span, logger, stepRender, err)
	}

	key, err := uc.saveReport(ctx, tracer, report, logger)
	if err != nil {
		return nil, uc.fail(ctx, &span, logger, stepSaveReport, err)
	}

	link, err := uc.presign(ctx, tracer, key)
	if err != nil {
		return nil, uc.fail(ctx, &span, logger, stepPresign, err)
	}

	logger.Infof("Relatório %s disponível até %s", key, format.Timestamp(link.ExpiresAt))

	m := uc.metrics()
	m.ReportsGeneratedTotal.Add(ctx, 1)
	m.ReportDuration.Record(ctx, time.Since(startedAt).Seconds())

	return &model.ReportResult{
		Message:     constant.ReportSuccessMessage,
		DownloadURL: link.URL,
	}, nil
}

// fail records the failed step and logs the error message.
func (uc *UseCase) fail(ctx context.Context, span *trace.Span, logger log.Logger, step string, err error) error {
	libOtel.HandleSpanError(span, "Failed to generate report at step "+step, err)

	logger.Errorf("Erro ao gerar relatório: %s", err.Error())

	uc.metrics().ReportFailuresTotal.Add(ctx, 1, metrics.StepOption(step))

	return err
}

func (uc *UseCase) fetchData(ctx context.Context, tracer trace.Tracer, request model.ReportRequest) ([]model.SaleRecord, error) {
	ctx, span := tracer.Start(ctx, "service.generate_report."+stepFetchData)
	defer span.End()

	records, err := uc.DataSource.FetchSales(ctx, request.StartDate, request.EndDate)
	if err != nil {
		libOtel.HandleSpanError(&span, "Error fetching sales", err)

		return nil, err
	}

	span.SetAttributes(attribute.Int("app.report.rows", len(records)))

	return records, nil
}

// renderReport turns the document into PDF bytes named after generatedAt. Nothing is written to
// local disk besides the renderer's own scratch file.
func (uc *UseCase) renderReport(ctx context.Context, tracer trace.Tracer, doc model.SalesDocument, generatedAt time.Time) (*model.GeneratedReport, error) {
	ctx, span := tracer.Start(ctx, "service.generate_report."+stepRender)
	defer span.End()

	html, err := uc.Renderer.Render(doc)
	if err != nil {
		libOtel.HandleSpanError(&span, "Error rendering report layout", err)

		return nil, err
	}

	content, err := uc.PdfPool.Generate(ctx, html)
	if err != nil {
		libOtel.HandleSpanError(&span, "Error printing report PDF", err)

		return nil, err
	}

	return &model.GeneratedReport{
		FileName: ReportFileName(generatedAt),
		Content:  content,
	}, nil
}
