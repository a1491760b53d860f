// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"net/url"

	"github.com/LerianStudio/sales-report/pkg/constant"
)

// sensitiveQueryParams are connection options that carry secrets.
var sensitiveQueryParams = []string{"password", "sslpassword", "authMechanismProperties"}

// RedactConnectionString masks the credentials of a data source URI before it is logged.
// Userinfo and secret-bearing query options are replaced; an unparsable URI yields "[invalid-uri]".
func RedactConnectionString(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "[invalid-uri]"
	}

	if u.User != nil {
		u.User = url.UserPassword(constant.RedactPlaceholder, constant.RedactPlaceholder)
	}

	if u.RawQuery != "" {
		query := u.Query()

		for _, param := range sensitiveQueryParams {
			if query.Has(param) {
				query.Set(param, constant.RedactPlaceholder)
			}
		}

		u.RawQuery = query.Encode()
	}

	return u.String()
}
