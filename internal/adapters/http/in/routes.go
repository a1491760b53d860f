// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"context"
	"errors"

	"github.com/LerianStudio/sales-report/pkg"
	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/model"
	"github.com/LerianStudio/sales-report/pkg/net/http"
	"github.com/LerianStudio/sales-report/pkg/storage"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
)

// NewRoutes creates the fiber app exposing the report handler locally.
func NewRoutes(lg log.Logger, tracer trace.Tracer, reportHandler *ReportHandler, storageClient storage.ObjectStorage) *fiber.App {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	f.Use(RecoverMiddleware())
	f.Use(SecurityHeaders())
	f.Use(otelfiber.Middleware())
	f.Use(WithTracking(lg, tracer))

	// Report routes
	f.Post("/v1/reports", http.WithBody(new(model.ReportRequest), reportHandler.GenerateReport))

	// Health
	f.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("healthy")
	})

	// Readiness - checks the report bucket
	f.Get("/ready", readinessHandler(storageClient))

	return f
}

// errorHandler keeps fiber's own status codes (404, 405) and maps anything else through WithError.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return http.JSONResponseError(c, fiberErr.Code, pkg.ResponseError{
			Title:   "Request Failed",
			Message: fiberErr.Message,
		})
	}

	return http.WithError(c, err)
}

// dependencyResult represents the health status of a single dependency in the readiness check.
type dependencyResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// readinessHandler returns 200 when the report bucket is reachable, 503 otherwise.
func readinessHandler(storageClient storage.ObjectStorage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := checkStorage(c.UserContext(), storageClient)

		body := fiber.Map{
			"status":       result.Status,
			"dependencies": map[string]*dependencyResult{"storage": result},
		}

		if result.Status != "ready" {
			return http.ServiceUnavailable(c, body)
		}

		return http.OK(c, body)
	}
}

// checkStorage verifies the bucket with a timeout.
func checkStorage(ctx context.Context, client storage.ObjectStorage) *dependencyResult {
	if client == nil {
		return &dependencyResult{Status: "not_ready", Message: "storage client not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, constant.ReadinessCheckTimeout)
	defer cancel()

	if err := client.HealthCheck(ctx); err != nil {
		return &dependencyResult{Status: "not_ready", Message: "storage connectivity check failed"}
	}

	return &dependencyResult{Status: "ready"}
}
