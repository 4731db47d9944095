// Package render turns a composed receipt document into printable artifacts.
// The document model decides content and row layout; this package only adds
// styling per output format.
package render

import (
	"bytes"
	"html/template"

	"advancedtech_backoffice/internal/domain/receipt"
)

var htmlFuncs = template.FuncMap{
	// Blank cells print as non-breaking spaces so padding rows keep their
	// height in every browser.
	"cell": func(s string) template.HTML {
		if s == "" {
			return template.HTML("&nbsp;")
		}
		return template.HTML(template.HTMLEscapeString(s))
	},
	// The total row label spans every column except the amount column.
	"labelspan": func(columns []string) int {
		if len(columns) <= 1 {
			return 1
		}
		return len(columns) - 1
	},
	"amount": func(cells []string) string {
		if len(cells) == 0 {
			return ""
		}
		return cells[len(cells)-1]
	},
}

var receiptTmpl = template.Must(template.New("receipt").Funcs(htmlFuncs).Parse(`<html>
<head>
<title>Job Order</title>
<style>
  body { font-family: Arial, sans-serif; padding: 20px; }
  .print-container { max-width: 700px; margin: auto; border: 1px solid #000; padding: 20px; }
  h2, .center { text-align: center; margin: 4px 0; }
  .details-container { display: flex; justify-content: space-between; margin: 20px 0; gap: 24px; }
  .details { margin: 8px 0; display: flex; align-items: center; }
  .label { font-weight: bold; }
  table { width: 100%; border-collapse: collapse; margin-top: 10px; }
  th, td { border: 1px solid black; padding: 5px; text-align: left; }
  .underline { display: inline-block; width: 100%; border-bottom: 1px solid black; }
  .tables-container { display: flex; justify-content: space-between; }
  .left-column, .right-column { width: 48%; }
  .charges { margin-top: 20px; border-top: 2px solid black; padding-top: 10px; }
  .charges p { display: flex; margin: 8px 0; }
  .charges .label { width: 50%; }
</style>
</head>
<body>
<div class="print-container">
  <h2>{{.Header.Identity.Name}}</h2>
  <p class="center">{{.Header.Identity.FormerName}}</p>
  <p class="center">{{.Header.Identity.AddressLine}}</p>
  <p class="center">{{.Header.Identity.ContactLine}}</p>

  <div class="details-container">
    <div style="width:60%;">
{{- range .Header.Customer}}
      <p class="details"><span class="label">{{.Label}}:</span> <span class="underline">{{.Value}}</span></p>
{{- end}}
    </div>
    <div style="width:40%;">
{{- range .Header.Schedule}}
      <p class="details"><span class="label">{{.Label}}:</span> <span class="underline">{{.Value}}</span></p>
{{- end}}
    </div>
  </div>

  <div class="tables-container">
    <div class="left-column">
      {{template "itemtable" .WorkTable}}
      <div class="charges">
        <h3 style="text-align:left;">Charges</h3>
{{- range .Charges}}
        <p><span class="label">{{.Label}}:</span> <span class="underline">{{.Amount}}</span></p>
{{- end}}
      </div>
    </div>
    <div class="right-column">
      {{template "itemtable" .FuelTable}}
      {{template "itemtable" .PartsTable}}
    </div>
  </div>
</div>
</body>
</html>
{{- define "itemtable"}}
<table>
  <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{- $span := labelspan .Columns}}
{{- range .Rows}}
{{- if eq .Kind "total"}}
  <tr><td colspan="{{$span}}" class="label">Total</td><td>{{amount .Cells}}</td></tr>
{{- else}}
  <tr>{{range .Cells}}<td>{{cell .}}</td>{{end}}</tr>
{{- end}}
{{- end}}
</table>
{{- end}}`))

// HTMLReceipt renders the document as a standalone printable HTML page.
func HTMLReceipt(doc receipt.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
