// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"fmt"

	"github.com/LerianStudio/sales-report/internal/services"
	"github.com/LerianStudio/sales-report/pkg/storage"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Service is the application glue where we put all top-level components to be used.
type Service struct {
	log.Logger
	Config  *Config
	UseCase *services.UseCase
	Storage storage.ObjectStorage
	Tracer  trace.Tracer

	cleanups []func()
}

// InitService loads the configuration and wires the report pipeline shared by the function and the server.
func InitService(ctx context.Context) (*Service, error) {
	cfg, logger, err := initConfigAndLogger()
	if err != nil {
		return nil, err
	}

	app := &Service{Logger: logger, Config: cfg}

	_, telemetryCleanup, err := initTelemetry(cfg, logger)
	if err != nil {
		return nil, err
	}

	app.cleanups = append(app.cleanups, telemetryCleanup)
	app.Tracer = otel.Tracer(cfg.OtelLibraryName)

	objectStorage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		app.Shutdown()
		return nil, err
	}

	app.Storage = objectStorage

	dataSource, dataSourceCleanup, err := initDataSource(ctx, cfg, logger)
	if err != nil {
		app.Shutdown()
		return nil, err
	}

	app.cleanups = append(app.cleanups, dataSourceCleanup)

	pdfPool, pdfCleanup := initPdfPool(cfg, logger)
	app.cleanups = append(app.cleanups, pdfCleanup)

	useCase, err := newUseCase(cfg, dataSource, pdfPool, objectStorage, initReportMetrics(cfg, logger))
	if err != nil {
		app.Shutdown()
		return nil, fmt.Errorf("failed to build report use case: %w", err)
	}

	app.UseCase = useCase

	return app, nil
}

// Shutdown releases resources in reverse order of creation.
func (app *Service) Shutdown() {
	for i := len(app.cleanups) - 1; i >= 0; i-- {
		app.cleanups[i]()
	}

	app.cleanups = nil

	app.Info("Graceful shutdown complete")
}
