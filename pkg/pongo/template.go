// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pongo

// salesReportTemplate lays out the report: title, generation line, full-width table and total line.
// Font sizes follow the document points (20, 10, 12).
const salesReportTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{ doc.Title }}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 0; }
  h1.title { font-size: 20pt; font-weight: normal; margin: 0 0 8pt 0; }
  p.generated-at { font-size: 10pt; margin: 0 0 12pt 0; }
  table.sales { width: 100%; border-collapse: collapse; font-size: 10pt; }
  table.sales th, table.sales td { border: 1px solid #000; padding: 3pt 5pt; text-align: left; }
  table.sales thead { display: table-header-group; }
  p.total { font-size: 12pt; margin: 12pt 0 0 0; }
</style>
</head>
<body>
<h1 class="title">{{ doc.Title }}</h1>
<p class="generated-at">{{ doc.GeneratedAt }}</p>
<table class="sales">
<thead>
<tr class="header-row">{% for column in header %}<th>{{ column }}</th>{% endfor %}</tr>
</thead>
<tbody>
{% for row in doc.Rows %}<tr class="sale-row"><td>{{ row.Date }}</td><td>{{ row.Product }}</td><td>{{ row.Quantity }}</td><td>{{ row.TotalValue }}</td></tr>
{% endfor %}</tbody>
</table>
<p class="total">{{ doc.Total }}</p>
</body>
</html>
`
