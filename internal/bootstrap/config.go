// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/datasource"
	"github.com/LerianStudio/sales-report/pkg/storage"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Config holds the application's configurable parameters read from environment variables.
type Config struct {
	EnvName                 string `env:"ENV_NAME"`
	LogLevel                string `env:"LOG_LEVEL"`
	ServerAddress           string `env:"SERVER_ADDRESS"`
	OtelServiceName         string `env:"OTEL_RESOURCE_SERVICE_NAME"`
	OtelLibraryName         string `env:"OTEL_LIBRARY_NAME"`
	OtelServiceVersion      string `env:"OTEL_RESOURCE_SERVICE_VERSION"`
	OtelDeploymentEnv       string `env:"OTEL_RESOURCE_DEPLOYMENT_ENVIRONMENT"`
	OtelColExporterEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	EnableTelemetry         bool   `env:"ENABLE_TELEMETRY"`
	// Report
	ReportBucket   string `env:"REPORT_BUCKET" validate:"required"`
	ReportTimeZone string `env:"REPORT_TIME_ZONE" validate:"location"`
	// Object storage
	ObjectStorageEndpoint     string `env:"OBJECT_STORAGE_ENDPOINT" validate:"omitempty,url"`
	ObjectStorageRegion       string `env:"OBJECT_STORAGE_REGION"`
	ObjectStorageAccessKeyID  string `env:"OBJECT_STORAGE_ACCESS_KEY_ID" validate:"required_with=ObjectStorageSecretKey"`
	ObjectStorageSecretKey    string `env:"OBJECT_STORAGE_SECRET_KEY" validate:"required_with=ObjectStorageAccessKeyID"`
	ObjectStorageUsePathStyle bool   `env:"OBJECT_STORAGE_USE_PATH_STYLE"`
	// Data source
	DataSourceProvider string `env:"DATA_SOURCE_PROVIDER" validate:"oneof=stub postgres mongodb"`
	DataSourceBreaker  bool   `env:"DATA_SOURCE_CIRCUIT_BREAKER"`
	PostgresHost       string `env:"POSTGRES_HOST" validate:"required_if=DataSourceProvider postgres"`
	PostgresPort       string `env:"POSTGRES_PORT" validate:"required_if=DataSourceProvider postgres"`
	PostgresUser       string `env:"POSTGRES_USER"`
	PostgresPassword   string `env:"POSTGRES_PASSWORD"`
	PostgresName       string `env:"POSTGRES_NAME" validate:"required_if=DataSourceProvider postgres"`
	PostgresSSLMode    string `env:"POSTGRES_SSLMODE"`
	SalesTable         string `env:"SALES_TABLE"`
	MongoURI           string `env:"MONGO_URI"`
	MongoDBHost        string `env:"MONGO_HOST" validate:"required_if=DataSourceProvider mongodb"`
	MongoDBPort        string `env:"MONGO_PORT"`
	MongoDBUser        string `env:"MONGO_USER"`
	MongoDBPassword    string `env:"MONGO_PASSWORD"`
	MongoDBName        string `env:"MONGO_NAME" validate:"required_if=DataSourceProvider mongodb"`
	MongoMaxPoolSize   int    `env:"MONGO_MAX_POOL_SIZE" validate:"gte=0"`
	SalesCollection    string `env:"SALES_COLLECTION"`
	// PDF Pool
	PdfPoolWorkers        int    `env:"PDF_POOL_WORKERS" validate:"gte=1"`
	PdfPoolTimeoutSeconds int    `env:"PDF_TIMEOUT_SECONDS" validate:"gte=1"`
	PdfChromePath         string `env:"PDF_CHROME_PATH"`
}

// ApplyDefaults fills the optional settings left empty.
func (cfg *Config) ApplyDefaults() {
	if cfg.ReportBucket == "" {
		cfg.ReportBucket = constant.DefaultReportBucket
	}

	if cfg.ReportTimeZone == "" {
		cfg.ReportTimeZone = constant.DefaultTimeZone
	}

	if cfg.DataSourceProvider == "" {
		cfg.DataSourceProvider = constant.DataSourceStub
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = constant.DefaultServerAddress
	}

	if cfg.OtelLibraryName == "" {
		cfg.OtelLibraryName = constant.ApplicationName
	}

	if cfg.OtelServiceName == "" {
		cfg.OtelServiceName = constant.ApplicationName
	}

	if cfg.PdfPoolWorkers == 0 {
		cfg.PdfPoolWorkers = constant.PDFDefaultWorkers
	}

	if cfg.PdfPoolTimeoutSeconds == 0 {
		cfg.PdfPoolTimeoutSeconds = constant.PDFDefaultTimeoutSeconds
	}
}

// Validate checks the configuration and reports every problem at once, naming the environment variables.
func (cfg *Config) Validate() error {
	validate, trans, err := newConfigValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Translate(trans))
	}

	return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
}

// Location returns the zone used for report timestamps.
func (cfg *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(cfg.ReportTimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", cfg.ReportTimeZone, err)
	}

	return location, nil
}

// StorageConfig maps the object storage settings.
func (cfg *Config) StorageConfig() storage.S3Config {
	return storage.S3Config{
		Endpoint:        cfg.ObjectStorageEndpoint,
		Region:          cfg.ObjectStorageRegion,
		Bucket:          cfg.ReportBucket,
		AccessKeyID:     cfg.ObjectStorageAccessKeyID,
		SecretAccessKey: cfg.ObjectStorageSecretKey,
		UsePathStyle:    cfg.ObjectStorageUsePathStyle,
	}
}

// DataSourceConfig maps the data source settings.
func (cfg *Config) DataSourceConfig() datasource.Config {
	return datasource.Config{
		Provider:       cfg.DataSourceProvider,
		CircuitBreaker: cfg.DataSourceBreaker,
		Postgres: datasource.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPassword,
			Name:     cfg.PostgresName,
			SSLMode:  cfg.PostgresSSLMode,
			Table:    cfg.SalesTable,
		},
		Mongo: datasource.MongoConfig{
			URI:         cfg.MongoURI,
			Host:        cfg.MongoDBHost,
			Port:        cfg.MongoDBPort,
			User:        cfg.MongoDBUser,
			Password:    cfg.MongoDBPassword,
			Name:        cfg.MongoDBName,
			Collection:  cfg.SalesCollection,
			MaxPoolSize: uint64(cfg.MongoMaxPoolSize),
		},
	}
}

// newConfigValidator names fields after their env tag and phrases errors in English.
func newConfigValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}

		return field.Name
	})

	// time.LoadLocation accepts "Local", which the built-in timezone tag rejects.
	if err := validate.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, nil, fmt.Errorf("registering location validation: %w", err)
	}

	english := en.New()
	uni := ut.New(english, english)

	trans, _ := uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("registering validation translations: %w", err)
	}

	overrides := map[string]string{
		"required":      "{0} is required",
		"required_if":   "{0} is required for this DATA_SOURCE_PROVIDER",
		"required_with": "{0} is required when the other object storage key is set",
		"location":      "{0} must be Local or an IANA time zone name",
		"oneof":         "{0} must be one of stub, postgres or mongodb",
		"gte":           "{0} is below the minimum allowed",
	}

	for tag, text := range overrides {
		tag, text := tag, text

		err := validate.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field())
				return msg
			})
		if err != nil {
			return nil, nil, fmt.Errorf("registering %s translation: %w", tag, err)
		}
	}

	return validate, trans, nil
}
