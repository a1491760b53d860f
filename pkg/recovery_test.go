// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoNamed_ExecutesFunction(t *testing.T) {
	t.Parallel()

	var executed atomic.Bool

	done := make(chan struct{})

	GoNamed(&log.NoneLogger{}, "http-server", func() {
		defer close(done)
		executed.Store(true)
	}, nil)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("goroutine did not run")
	}

	assert.True(t, executed.Load())
}

func TestGoNamed_RecoversPanic(t *testing.T) {
	t.Parallel()

	recovered := make(chan any, 1)

	GoNamed(&log.NoneLogger{}, "http-server", func() {
		panic("listener crashed")
	}, func(r any) {
		recovered <- r
	})

	select {
	case r := <-recovered:
		require.NotNil(t, r)
		assert.Equal(t, "listener crashed", r)
	case <-time.After(2 * time.Second):
		t.Fatal("panic was not recovered")
	}
}

func TestGoNamed_NilOnPanic(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})

	GoNamed(&log.NoneLogger{}, "worker", func() {
		defer close(done)
		panic("boom")
	}, nil)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("goroutine did not complete")
	}
}
