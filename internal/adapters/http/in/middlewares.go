// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"github.com/LerianStudio/sales-report/pkg"
	"github.com/LerianStudio/sales-report/pkg/constant"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// SecurityHeaders returns a Fiber middleware that sets standard security headers on every response.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "0")

		return c.Next()
	}
}

// RecoverMiddleware returns a Fiber middleware that recovers from panics inside handlers.
func RecoverMiddleware() fiber.Handler {
	return recover.New()
}

// WithTracking puts the logger, tracer and request id in the request's user context.
// The X-Request-Id header is honoured when present and echoed back.
func WithTracking(logger log.Logger, tracer trace.Tracer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(constant.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constant.RequestIDHeader, requestID)
		c.SetUserContext(pkg.ContextWithTracking(c.UserContext(), logger, tracer, requestID))

		return c.Next()
	}
}
