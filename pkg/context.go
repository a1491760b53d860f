// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"context"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// ContextWithTracking attaches the logger, tracer and request id that
// libCommons.NewTrackingFromContext reads back. An empty requestID gets a random UUID.
func ContextWithTracking(ctx context.Context, logger log.Logger, tracer trace.Tracer, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx = libCommons.ContextWithHeaderID(ctx, requestID)
	ctx = libCommons.ContextWithLogger(ctx, logger)

	return libCommons.ContextWithTracer(ctx, tracer)
}
