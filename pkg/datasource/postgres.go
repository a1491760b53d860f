// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package datasource

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/LerianStudio/sales-report/pkg"
	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/model"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresConfig points at a table with sold_at, product_name, quantity and total_value columns.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Table    string
}

// DSN builds the connection URI.
func (c PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = constant.DefaultPostgresSSLMode
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}

	return u.String()
}

// querier is the part of pgxpool.Pool the repository needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository reads sales from PostgreSQL.
type PostgresRepository struct {
	db    querier
	close func()
	table string
}

// NewPostgresRepository connects a pgx pool and verifies it with a ping.
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig, logger log.Logger) (*PostgresRepository, error) {
	dsn := cfg.DSN()

	logger.Infof("PostgreSQL data source connecting to %s", pkg.RedactConnectionString(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return newPostgresRepository(pool, pool.Close, cfg.Table), nil
}

func newPostgresRepository(db querier, closeFn func(), table string) *PostgresRepository {
	if table == "" {
		table = constant.DefaultSalesTable
	}

	return &PostgresRepository{db: db, close: closeFn, table: table}
}

// Close releases the pool.
func (r *PostgresRepository) Close() {
	if r.close != nil {
		r.close()
	}
}

// buildSalesQuery selects the rows in [start, end]; a zero bound leaves that side open.
func (r *PostgresRepository) buildSalesQuery(start, end time.Time) (string, []any, error) {
	table := pgx.Identifier(strings.Split(r.table, ".")).Sanitize()

	query := sq.Select("sold_at", "product_name", "quantity", "total_value::text").
		From(table).
		OrderBy("sold_at").
		PlaceholderFormat(sq.Dollar)

	if !start.IsZero() {
		query = query.Where(sq.GtOrEq{"sold_at": start})
	}

	if !end.IsZero() {
		query = query.Where(sq.LtOrEq{"sold_at": end})
	}

	return query.ToSql()
}

// FetchSales queries the sales table.
func (r *PostgresRepository) FetchSales(ctx context.Context, start, end time.Time) ([]model.SaleRecord, error) {
	logger, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "datasource.postgres.fetch_sales")
	defer span.End()

	sqlQuery, args, err := r.buildSalesQuery(start, end)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to build sales query", err)

		return nil, fmt.Errorf("building sales query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to query sales", err)

		logger.Errorf("Error querying sales table %s: %v", r.table, err)

		return nil, fmt.Errorf("querying sales: %w", err)
	}
	defer rows.Close()

	records := make([]model.SaleRecord, 0)

	for rows.Next() {
		var (
			record model.SaleRecord
			total  string
		)

		if err := rows.Scan(&record.Date, &record.ProductName, &record.Quantity, &total); err != nil {
			libOpentelemetry.HandleSpanError(&span, "Failed to scan sale row", err)

			return nil, fmt.Errorf("scanning sale row: %w", err)
		}

		record.TotalValue, err = decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("parsing total_value %q: %w", total, err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to iterate sales rows", err)

		return nil, fmt.Errorf("iterating sales rows: %w", err)
	}

	logger.Infof("Fetched %d sales from postgres", len(records))

	return records, nil
}
