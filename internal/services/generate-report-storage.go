// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"bytes"
	"context"

	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOtel "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"go.opentelemetry.io/otel/trace"
)

// saveReport uploads the PDF under its file name and returns the stored key.
func (uc *UseCase) saveReport(ctx context.Context, tracer trace.Tracer, report *model.GeneratedReport, logger log.Logger) (string, error) {
	ctx, span := tracer.Start(ctx, "service.generate_report."+stepSaveReport)
	defer span.End()

	key, err := uc.Storage.Upload(ctx, report.FileName, bytes.NewReader(report.Content), constant.ReportContentType)
	if err != nil {
		libOtel.HandleSpanError(&span, "Error uploading report file", err)

		return "", err
	}

	uc.metrics().ReportSizeBytes.Record(ctx, int64(len(report.Content)))

	logger.Infof("Report uploaded: %s (%d bytes)", key, len(report.Content))

	return key, nil
}

// presign issues a one hour download link for key.
func (uc *UseCase) presign(ctx context.Context, tracer trace.Tracer, key string) (*model.DownloadLink, error) {
	ctx, span := tracer.Start(ctx, "service.generate_report."+stepPresign)
	defer span.End()

	issuedAt := uc.now()

	url, err := uc.Storage.GeneratePresignedURL(ctx, key, constant.PresignExpiry)
	if err != nil {
		libOtel.HandleSpanError(&span, "Error generating presigned URL", err)

		return nil, err
	}

	return &model.DownloadLink{
		URL:       url,
		ExpiresAt: issuedAt.Add(constant.PresignExpiry),
	}, nil
}
