// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"runtime/debug"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
)

// GoNamed starts fn in a goroutine that logs, instead of crashing the process, when fn panics.
// onPanic, when set, runs after the panic is logged.
func GoNamed(logger log.Logger, name string, fn func(), onPanic func(recovered any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("Goroutine %q panic recovered: %v\nStack: %s", name, r, string(debug.Stack()))

				if onPanic != nil {
					onPanic(r)
				}
			}
		}()

		fn()
	}()
}
