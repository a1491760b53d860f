// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import (
	"errors"
)

// List of errors that can be returned.
var (
	ErrInternalServer = errors.New("SRF-0001")
	ErrBadRequest     = errors.New("SRF-0002")
)
