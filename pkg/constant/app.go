// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

const ApplicationName = "sales-report"

// RedactPlaceholder is the replacement value for masked credentials in connection strings.
const RedactPlaceholder = "REDACTED"

// DefaultTimeZone keeps timestamps in the process local zone unless REPORT_TIME_ZONE says otherwise.
const DefaultTimeZone = "Local"

// DefaultServerAddress is the listen address of the local HTTP harness.
const DefaultServerAddress = ":8080"
