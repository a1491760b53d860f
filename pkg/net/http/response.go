// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"github.com/LerianStudio/sales-report/pkg"

	"github.com/gofiber/fiber/v2"
)

// OK sends an HTTP 200 OK response with a JSON body.
func OK(c *fiber.Ctx, s any) error {
	return c.Status(fiber.StatusOK).JSON(s)
}

// BadRequest sends an HTTP 400 Bad Request response with a custom body.
func BadRequest(c *fiber.Ctx, s any) error {
	return c.Status(fiber.StatusBadRequest).JSON(s)
}

// InternalServerError sends an HTTP 500 Internal Server Error response.
func InternalServerError(c *fiber.Ctx, code, title, message string) error {
	return JSONResponseError(c, fiber.StatusInternalServerError, pkg.ResponseError{
		Code:    code,
		Title:   title,
		Message: message,
	})
}

// ServiceUnavailable sends an HTTP 503 response with a custom body.
func ServiceUnavailable(c *fiber.Ctx, s any) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(s)
}

// JSONResponseError sends a JSON formatted error response with the given status.
func JSONResponseError(c *fiber.Ctx, status int, err pkg.ResponseError) error {
	return c.Status(status).JSON(err)
}
