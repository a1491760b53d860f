// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

// Package storage defines interfaces for object storage operations.
package storage

//go:generate mockgen --destination=ports.mock.go --package=storage --copyright_file=../../COPYRIGHT . ObjectStorage

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the object store the report is written to.
// This interface abstracts S3-compatible backends (AWS S3, MinIO, SeaweedFS S3, LocalStack).
type ObjectStorage interface {
	// Upload stores content from a reader at the given key.
	// Returns the final key and any error.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// GeneratePresignedURL creates a credential-free download URL valid for expiry.
	GeneratePresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// HealthCheck verifies the bucket is reachable with the configured credentials.
	HealthCheck(ctx context.Context) error
}
