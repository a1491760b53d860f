// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	lambdaIn "github.com/LerianStudio/sales-report/internal/adapters/lambda/in"
)

// NewFunctionHandler builds the Lambda handler on top of the service's use case.
func (app *Service) NewFunctionHandler() *lambdaIn.Handler {
	return &lambdaIn.Handler{
		Service: app.UseCase,
		Logger:  app.Logger,
		Tracer:  app.Tracer,
	}
}
