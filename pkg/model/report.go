// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// acceptedDateLayouts are tried in order when binding the invocation dates.
var acceptedDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ReportRequest is the invocation input. The dates are opaque filter bounds handed to the data source.
type ReportRequest struct {
	StartDate time.Time `json:"StartDate"`
	EndDate   time.Time `json:"EndDate"`
}

// UnmarshalJSON binds ISO-8601 datetimes and plain dates. No range check is made.
func (r *ReportRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		StartDate string `json:"StartDate"`
		EndDate   string `json:"EndDate"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	start, err := ParseDate(raw.StartDate)
	if err != nil {
		return fmt.Errorf("StartDate: %w", err)
	}

	end, err := ParseDate(raw.EndDate)
	if err != nil {
		return fmt.Errorf("EndDate: %w", err)
	}

	r.StartDate = start
	r.EndDate = end

	return nil
}

// ParseDate parses an ISO-8601 datetime or date. An empty value binds to the zero time.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", value)
}

// SaleRecord is one row produced by a data source.
type SaleRecord struct {
	Date        time.Time
	ProductName string
	Quantity    int
	TotalValue  decimal.Decimal
}

// SalesRow is a table body row with every column already formatted as text.
type SalesRow struct {
	Date       string
	Product    string
	Quantity   string
	TotalValue string
}

// SalesDocument is the layout model of the rendered report, in document order.
type SalesDocument struct {
	Title       string
	GeneratedAt string
	Header      [4]string
	Rows        []SalesRow
	Total       string
}

// GeneratedReport holds the rendered PDF between render and upload.
type GeneratedReport struct {
	FileName string
	Content  []byte
}

// DownloadLink is a presigned URL and the instant it stops working.
type DownloadLink struct {
	URL       string
	ExpiresAt time.Time
}

// ReportResult is the success envelope returned to the caller.
type ReportResult struct {
	Message     string `json:"Message"`
	DownloadURL string `json:"DownloadUrl"`
}
