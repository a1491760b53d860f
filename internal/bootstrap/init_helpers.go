// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/LerianStudio/sales-report/internal/services"
	"github.com/LerianStudio/sales-report/pkg"
	"github.com/LerianStudio/sales-report/pkg/datasource"
	"github.com/LerianStudio/sales-report/pkg/metrics"
	"github.com/LerianStudio/sales-report/pkg/pdf"
	"github.com/LerianStudio/sales-report/pkg/pongo"
	"github.com/LerianStudio/sales-report/pkg/storage"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOtel "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/LerianStudio/lib-commons/v3/commons/zap"
	"go.opentelemetry.io/otel"
)

// initConfigAndLogger loads configuration from environment variables, validates it,
// and initializes the structured logger.
func initConfigAndLogger() (*Config, log.Logger, error) {
	cfg := &Config{}
	if err := libCommons.SetConfigFromEnvVars(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to load config from env vars: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := zap.InitializeLoggerWithError()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger, nil
}

// initTelemetry initializes OpenTelemetry and returns a cleanup that shuts the providers down.
func initTelemetry(cfg *Config, logger log.Logger) (*libOtel.Telemetry, func(), error) {
	telemetry, err := libOtel.InitializeTelemetryWithError(&libOtel.TelemetryConfig{
		LibraryName:               cfg.OtelLibraryName,
		ServiceName:               cfg.OtelServiceName,
		ServiceVersion:            cfg.OtelServiceVersion,
		DeploymentEnv:             cfg.OtelDeploymentEnv,
		CollectorExporterEndpoint: cfg.OtelColExporterEndpoint,
		EnableTelemetry:           cfg.EnableTelemetry,
		Logger:                    logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	cleanup := func() {
		logger.Info("Cleanup: shutting down telemetry")
		telemetry.ShutdownTelemetry()
	}

	return telemetry, cleanup, nil
}

// initStorage creates the S3-compatible client bound to the report bucket.
func initStorage(ctx context.Context, cfg *Config, logger log.Logger) (*storage.S3Client, error) {
	storageClient, err := storage.NewS3Client(ctx, cfg.StorageConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	if cfg.ObjectStorageEndpoint != "" {
		logger.Infof("Storage initialized with bucket %s at %s", cfg.ReportBucket, pkg.RedactConnectionString(cfg.ObjectStorageEndpoint))
	} else {
		logger.Infof("Storage initialized with bucket %s", cfg.ReportBucket)
	}

	return storageClient, nil
}

// initDataSource connects the configured sales data source.
func initDataSource(ctx context.Context, cfg *Config, logger log.Logger) (datasource.Repository, func(), error) {
	repo, closeFn, err := datasource.New(ctx, cfg.DataSourceConfig(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize %s data source: %w", cfg.DataSourceProvider, err)
	}

	cleanup := func() {
		logger.Infof("Cleanup: closing %s data source", cfg.DataSourceProvider)
		closeFn()
	}

	return repo, cleanup, nil
}

// initPdfPool starts the Chrome workers and returns a cleanup that stops them.
func initPdfPool(cfg *Config, logger log.Logger) (*pdf.WorkerPool, func()) {
	pdfPool := pdf.NewWorkerPool(cfg.PdfPoolWorkers, time.Duration(cfg.PdfPoolTimeoutSeconds)*time.Second, cfg.PdfChromePath, logger)
	logger.Infof("PDF Pool initialized with %d workers and %d seconds timeout", cfg.PdfPoolWorkers, cfg.PdfPoolTimeoutSeconds)

	cleanup := func() {
		logger.Info("Cleanup: closing PDF pool")
		pdfPool.Close()
	}

	return pdfPool, cleanup
}

// initReportMetrics registers the report instruments, falling back to no-op ones.
func initReportMetrics(cfg *Config, logger log.Logger) *metrics.ReportMetrics {
	if !cfg.EnableTelemetry {
		logger.Info("Report metrics: using noop instruments (telemetry disabled)")
		return metrics.NoopReportMetrics()
	}

	m, err := metrics.NewReportMetrics(otel.GetMeterProvider().Meter(cfg.OtelLibraryName))
	if err != nil {
		logger.Errorf("Failed to create report metrics, falling back to noop: %v", err)
		return metrics.NoopReportMetrics()
	}

	return m
}

// newUseCase assembles the report pipeline.
func newUseCase(cfg *Config, dataSource datasource.Repository, pdfPool pdf.PDFGenerator, objectStorage storage.ObjectStorage, reportMetrics *metrics.ReportMetrics) (*services.UseCase, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	renderer, err := pongo.NewSalesReportRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report renderer: %w", err)
	}

	return &services.UseCase{
		DataSource: dataSource,
		Renderer:   renderer,
		PdfPool:    pdfPool,
		Storage:    objectStorage,
		Metrics:    reportMetrics,
		Location:   location,
		Now:        time.Now,
	}, nil
}
