// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package datasource

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/LerianStudio/sales-report/pkg"
	"github.com/LerianStudio/sales-report/pkg/constant"
	"github.com/LerianStudio/sales-report/pkg/model"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig points at a collection of sale documents.
type MongoConfig struct {
	URI         string // scheme, e.g. mongodb or mongodb+srv
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	Collection  string
	MaxPoolSize uint64
}

// ConnectionString builds the connection URI.
func (c MongoConfig) ConnectionString() string {
	scheme := c.URI
	if scheme == "" {
		scheme = "mongodb"
	}

	host := c.Host
	if c.Port != "" {
		host += ":" + c.Port
	}

	u := url.URL{Scheme: scheme, Host: host, Path: "/"}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}

	return u.String()
}

// saleDocument is the stored shape. total_value may be a Decimal128, double, integer or string.
type saleDocument struct {
	Date        time.Time     `bson:"date"`
	ProductName string        `bson:"product_name"`
	Quantity    int           `bson:"quantity"`
	TotalValue  bson.RawValue `bson:"total_value"`
}

// MongoRepository reads sales from MongoDB.
type MongoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRepository connects and pings the server.
func NewMongoRepository(ctx context.Context, cfg MongoConfig, logger log.Logger) (*MongoRepository, error) {
	source := cfg.ConnectionString()

	logger.Infof("MongoDB data source connecting to %s", pkg.RedactConnectionString(source))

	maxPoolSize := cfg.MaxPoolSize
	if maxPoolSize == 0 {
		maxPoolSize = constant.MongoDefaultMaxPoolSize
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(source).SetMaxPoolSize(maxPoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)

		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	collection := cfg.Collection
	if collection == "" {
		collection = constant.DefaultSalesCollection
	}

	return &MongoRepository{
		client:     client,
		collection: client.Database(cfg.Name).Collection(collection),
	}, nil
}

// Close disconnects the client.
func (r *MongoRepository) Close() {
	if r.client != nil {
		_ = r.client.Disconnect(context.Background())
	}
}

// salesFilter matches documents dated within [start, end]; a zero bound leaves that side open.
func salesFilter(start, end time.Time) bson.M {
	dateRange := bson.M{}

	if !start.IsZero() {
		dateRange["$gte"] = start
	}

	if !end.IsZero() {
		dateRange["$lte"] = end
	}

	if len(dateRange) == 0 {
		return bson.M{}
	}

	return bson.M{"date": dateRange}
}

// toDecimal converts the stored total_value into a decimal.
func toDecimal(value bson.RawValue) (decimal.Decimal, error) {
	switch value.Type {
	case bsontype.Decimal128:
		return decimal.NewFromString(value.Decimal128().String())
	case bsontype.Double:
		return decimal.NewFromFloat(value.Double()), nil
	case bsontype.Int32:
		return decimal.NewFromInt32(value.Int32()), nil
	case bsontype.Int64:
		return decimal.NewFromInt(value.Int64()), nil
	case bsontype.String:
		return decimal.NewFromString(value.StringValue())
	default:
		return decimal.Zero, fmt.Errorf("unsupported total_value type %s", value.Type)
	}
}

func (d saleDocument) toRecord() (model.SaleRecord, error) {
	total, err := toDecimal(d.TotalValue)
	if err != nil {
		return model.SaleRecord{}, err
	}

	return model.SaleRecord{
		Date:        d.Date,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		TotalValue:  total,
	}, nil
}

// FetchSales finds the sale documents sorted by date.
func (r *MongoRepository) FetchSales(ctx context.Context, start, end time.Time) ([]model.SaleRecord, error) {
	logger, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "datasource.mongodb.fetch_sales")
	defer span.End()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, salesFilter(start, end), opts)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to find sales", err)

		logger.Errorf("Error finding sales: %v", err)

		return nil, fmt.Errorf("finding sales: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]model.SaleRecord, 0)

	for cursor.Next(ctx) {
		var doc saleDocument
		if err := cursor.Decode(&doc); err != nil {
			libOpentelemetry.HandleSpanError(&span, "Failed to decode sale document", err)

			return nil, fmt.Errorf("decoding sale document: %w", err)
		}

		record, err := doc.toRecord()
		if err != nil {
			return nil, fmt.Errorf("converting sale document: %w", err)
		}

		records = append(records, record)
	}

	if err := cursor.Err(); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to iterate sales cursor", err)

		return nil, fmt.Errorf("iterating sales cursor: %w", err)
	}

	logger.Infof("Fetched %d sales from mongodb", len(records))

	return records, nil
}
