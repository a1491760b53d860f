// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

// Package pongo lays out report documents as HTML using pongo2.
package pongo

import (
	"fmt"

	"github.com/LerianStudio/sales-report/pkg/model"

	"github.com/flosch/pongo2/v6"
)

//go:generate mockgen --destination=renderer.mock.go --package=pongo --copyright_file=../../COPYRIGHT . HTMLRenderer

// HTMLRenderer turns a laid out sales document into an HTML page.
type HTMLRenderer interface {
	Render(doc model.SalesDocument) (string, error)
}

// Compile-time interface satisfaction check.
var _ HTMLRenderer = (*SalesReportRenderer)(nil)

// SalesReportRenderer renders the sales report template. The template is parsed once and
// is safe to execute from concurrent invocations.
type SalesReportRenderer struct {
	tpl *pongo2.Template
}

// NewSalesReportRenderer parses the built-in sales report template.
func NewSalesReportRenderer() (*SalesReportRenderer, error) {
	return NewRendererFromString(salesReportTemplate)
}

// NewRendererFromString parses a custom template. The template receives "doc" (model.SalesDocument)
// and "header" (the header columns as a slice).
func NewRendererFromString(source string) (*SalesReportRenderer, error) {
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}

	return &SalesReportRenderer{tpl: tpl}, nil
}

// Render executes the template for doc.
func (r *SalesReportRenderer) Render(doc model.SalesDocument) (string, error) {
	out, err := r.tpl.Execute(pongo2.Context{
		"doc":    doc,
		"header": doc.Header[:],
	})
	if err != nil {
		return "", fmt.Errorf("executing report template: %w", err)
	}

	return out, nil
}
