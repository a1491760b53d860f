// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

// PDF Generation Constants
const (
	PDFMinValidSizeBytes     = 500
	PDFLargeHTMLThreshold    = 500 * 1024 // 500 KB
	PDFBytesPerKB            = 1024
	PDFRenderSettleDelay     = 200 * time.Millisecond
	PDFPaperWidthInches      = 8.27 // A4
	PDFPaperHeightInches     = 11.69
	PDFMarginInches          = 0.5
	PDFFilePermissions       = 0o600
	PDFChromeMaxOldSpaceSize = "512"
	PDFDefaultWorkers        = 1
	PDFDefaultTimeoutSeconds = 90
)
