// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"fmt"
	"strings"

	"github.com/LerianStudio/sales-report/pkg/constant"
)

// ValidationError records a request that could not be accepted as sent.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// InternalServerError records a failure while generating a report.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"-"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// Unwrap returns the failure that caused it.
func (e InternalServerError) Unwrap() error {
	return e.Err
}

// ResponseError is the error body returned to HTTP clients.
type ResponseError struct {
	Code    string `json:"code,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error returns the message of the ResponseError.
func (r ResponseError) Error() string {
	return r.Message
}

// ValidateBadRequestError wraps a request decoding failure.
func ValidateBadRequestError(err error, entityType string) error {
	return ValidationError{
		EntityType: entityType,
		Code:       constant.ErrBadRequest.Error(),
		Title:      "Bad Request",
		Message:    fmt.Sprintf("The request body could not be read: %v. Dates must use the yyyy-mm-dd or RFC 3339 format.", err),
		Err:        err,
	}
}

// ValidateInternalError wraps a report generation failure. The message carries the cause, matching what the function returns.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    err.Error(),
		Err:        err,
	}
}
