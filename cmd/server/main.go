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
)

// Local harness that serves the report generation over HTTP.
func main() {
	libCommons.InitLocalEnvConfig()

	svc, err := bootstrap.InitService(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize sales report server: %v\n", err)
		os.Exit(1)
	}

	svc.RunServer()
}
