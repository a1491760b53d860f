// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	httpIn "github.com/LerianStudio/sales-report/internal/adapters/http/in"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
)

// newHTTPServer builds the local HTTP harness on top of the service's use case.
func (app *Service) newHTTPServer() *Server {
	reportHandler := &httpIn.ReportHandler{Service: app.UseCase}

	routes := httpIn.NewRoutes(app.Logger, app.Tracer, reportHandler, app.Storage)

	return NewServer(app.Config, routes, app.Logger)
}

// RunServer serves the HTTP harness until it is signalled, then releases every resource.
func (app *Service) RunServer() {
	libCommons.NewLauncher(
		libCommons.WithLogger(app.Logger),
		libCommons.RunApp("HTTP Service", app.newHTTPServer()),
	).Run()

	app.Info("Starting graceful shutdown...")
	app.Shutdown()
}
