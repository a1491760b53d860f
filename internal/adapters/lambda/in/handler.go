// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"context"

	"github.com/LerianStudio/sales-report/internal/services"
	"github.com/LerianStudio/sales-report/pkg"
	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOtel "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Handler is the Lambda entrypoint for report generation.
type Handler struct {
	Service *services.UseCase
	Logger  log.Logger
	Tracer  trace.Tracer
}

// Handle generates the report for one invocation. The invocation's AWS request id is
// used as the request id in logs and spans; failures are returned as the invocation error.
func (h *Handler) Handle(ctx context.Context, request model.ReportRequest) (*model.ReportResult, error) {
	var requestID string
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}

	ctx = pkg.ContextWithTracking(ctx, h.Logger, h.Tracer, requestID)

	ctx, span := h.Tracer.Start(ctx, "handler.generate_report")
	defer span.End()

	if lambdacontext.FunctionName != "" {
		span.SetAttributes(attribute.String("faas.name", lambdacontext.FunctionName))
	}

	result, err := h.Service.GenerateReport(ctx, request)
	if err != nil {
		libOtel.HandleSpanError(&span, "Failed to generate report", err)

		return nil, err
	}

	return result, nil
}
