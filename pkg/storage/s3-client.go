// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config contains configuration for S3-compatible storage.
type S3Config struct {
	Endpoint        string // Optional: for MinIO, LocalStack, SeaweedFS S3
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool // Required for SeaweedFS/MinIO
}

// S3Client provides S3-compatible object storage operations on a single bucket.
type S3Client struct {
	s3     *s3.Client
	bucket string
}

var (
	// ErrBucketRequired indicates bucket name is missing.
	ErrBucketRequired = errors.New("bucket name is required")
	// ErrKeyRequired indicates object key is missing.
	ErrKeyRequired = errors.New("object key is required")
)

// NewS3Client creates a new S3 client with the given configuration.
// Without static keys the default AWS credential chain (function role, env, profile) is used.
func NewS3Client(ctx context.Context, cfg S3Config) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}

	var opts []func(*config.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	clientOpts := []func(*s3.Options){}

	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	if cfg.UsePathStyle {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return newS3ClientFromAPI(s3.NewFromConfig(awsCfg, clientOpts...), cfg.Bucket), nil
}

func newS3ClientFromAPI(client *s3.Client, bucket string) *S3Client {
	return &S3Client{
		s3:     client,
		bucket: bucket,
	}
}

// Bucket returns the bucket every operation targets.
func (client *S3Client) Bucket() string {
	return client.bucket
}

// Upload stores content from a reader at the given key in a single PutObject call.
// The reader should implement io.Seeker so the payload can be signed over plain HTTP endpoints.
func (client *S3Client) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	logger, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)
	ctx, span := tracer.Start(ctx, "repository.storage.upload")

	defer span.End()

	if key == "" {
		return "", ErrKeyRequired
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(client.bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	}

	if _, err := client.s3.PutObject(ctx, input); err != nil {
		libOpentelemetry.HandleSpanError(&span, "failed to upload object", err)

		logger.Errorf("failed to upload object %s: %v", key, err)

		return "", fmt.Errorf("uploading object: %w", err)
	}

	logger.Infof("uploaded object %s to bucket %s", key, client.bucket)

	return key, nil
}

// GeneratePresignedURL creates a time-limited download URL. Signing happens locally,
// no request reaches the object store.
func (client *S3Client) GeneratePresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	logger, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)
	ctx, span := tracer.Start(ctx, "repository.storage.generate_presigned_url")

	defer span.End()

	if key == "" {
		return "", ErrKeyRequired
	}

	presigner := s3.NewPresignClient(client.s3)

	input := &s3.GetObjectInput{
		Bucket: aws.String(client.bucket),
		Key:    aws.String(key),
	}

	result, err := presigner.PresignGetObject(ctx, input, s3.WithPresignExpires(expiry))
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "failed to generate presigned url", err)

		logger.Errorf("failed to generate presigned url for %s: %v", key, err)

		return "", fmt.Errorf("generating presigned url: %w", err)
	}

	return result.URL, nil
}

// HealthCheck verifies if the bucket is accessible.
func (client *S3Client) HealthCheck(ctx context.Context) error {
	_, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)
	ctx, span := tracer.Start(ctx, "repository.storage.health_check")

	defer span.End()

	input := &s3.HeadBucketInput{
		Bucket: aws.String(client.bucket),
	}

	if _, err := client.s3.HeadBucket(ctx, input); err != nil {
		libOpentelemetry.HandleSpanError(&span, "bucket health check failed", err)

		return fmt.Errorf("S3 health check failed: %w", err)
	}

	return nil
}

// Compile-time interface check.
var _ ObjectStorage = (*S3Client)(nil)
