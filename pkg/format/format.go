// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

// Package format renders numbers, money and dates the way the Brazilian report reads them.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/LerianStudio/sales-report/pkg/constant"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/pt_BR"
	"github.com/shopspring/decimal"
)

// translator is safe for concurrent use; locales keeps no mutable state after New.
var translator locales.Translator = pt_BR.New()

// groupSeparator and decimalSeparator are read off the locale once, from "1.234,5".
var groupSeparator, decimalSeparator = separators(translator)

func separators(tr locales.Translator) (string, string) {
	sample := tr.FmtNumber(1234.5, 1)

	return sample[1:2], sample[len(sample)-2 : len(sample)-1]
}

// Number formats value with two decimal places, "." grouping and "," as decimal separator.
// The digits come from the decimal itself, so totals of any size print exactly.
func Number(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	integerPart, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder

	b.WriteString(sign)

	for i, digit := range integerPart {
		if i > 0 && (len(integerPart)-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}

		b.WriteRune(digit)
	}

	b.WriteString(decimalSeparator)
	b.WriteString(fraction)

	return b.String()
}

// Currency formats value as Brazilian reais, e.g. "R$ 1.500,00".
func Currency(value decimal.Decimal) string {
	return constant.CurrencySymbol + " " + Number(value)
}

// Integer renders a quantity as plain text.
func Integer(value int) string {
	return strconv.Itoa(value)
}

// Date renders t as dd/MM/yyyy.
func Date(t time.Time) string {
	return t.Format(constant.ReportDateLayout)
}

// Timestamp renders t as dd/MM/yyyy HH:mm:ss.
func Timestamp(t time.Time) string {
	return t.Format(constant.ReportTimestampLayout)
}
