// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/LerianStudio/sales-report/internal/bootstrap"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	libCommons.InitLocalEnvConfig()

	svc, err := bootstrap.InitService(context.Background())
	if err != nil {
		// The structured logger is created inside InitService, so stderr is all there is here.
		fmt.Fprintf(os.Stderr, "Failed to initialize sales report function: %v\n", err)
		os.Exit(1)
	}

	lambda.StartWithOptions(svc.NewFunctionHandler().Handle, lambda.WithEnableSIGTERM(svc.Shutdown))
}
