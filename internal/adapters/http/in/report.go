// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"github.com/LerianStudio/sales-report/internal/services"
	"github.com/LerianStudio/sales-report/pkg/model"
	"github.com/LerianStudio/sales-report/pkg/net/http"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	libOtel "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves the report generation over HTTP.
type ReportHandler struct {
	Service *services.UseCase
}

// GenerateReport generates a sales report for the posted period.
//
// POST /v1/reports with {"StartDate": "...", "EndDate": "..."} answers
// {"Message": "...", "DownloadUrl": "..."} or an error body.
func (rh *ReportHandler) GenerateReport(p any, c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger, tracer, reqID, _ := libCommons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.generate_report")
	defer span.End()

	payload := p.(*model.ReportRequest)

	result, err := rh.Service.GenerateReport(ctx, *payload)
	if err != nil {
		libOtel.HandleSpanError(&span, "Failed to generate report", err)

		return http.WithError(c, err)
	}

	logger.Infof("Request %s answered with a download link", reqID)

	return http.OK(c, result)
}
