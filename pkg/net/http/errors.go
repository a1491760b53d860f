// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"github.com/LerianStudio/sales-report/pkg"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// WithError maps err to the matching HTTP error response.
func WithError(c *fiber.Ctx, err error) error {
	var vErr pkg.ValidationError
	if errors.As(err, &vErr) {
		return BadRequest(c, pkg.ResponseError{
			Code:    vErr.Code,
			Title:   vErr.Title,
			Message: vErr.Message,
		})
	}

	var rErr pkg.ResponseError
	if errors.As(err, &rErr) {
		return JSONResponseError(c, fiber.StatusInternalServerError, rErr)
	}

	var iErr pkg.InternalServerError
	if !errors.As(err, &iErr) {
		_ = errors.As(pkg.ValidateInternalError(err, ""), &iErr)
	}

	return InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
}
