// Package view renders the on-screen HTML form of a bill: the same data the
// PDF export carries, as a fixed-proportion table for the browser.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/tryidoltech/Tryidol-Inv/internal/domain"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/billing"
)

// Column proportions match the printed quotation:
// S.N. 7%, Description 50%, Unit Price 15%, Qty 12%, Amount 20%.
const billTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvID}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2rem; }
table { width: 100%; border-collapse: collapse; margin-top: 1.5rem; }
th, td { border: 1px solid #000; padding: 0.5rem; text-align: center; }
th { background: #f5f5f5; }
td.desc { text-align: left; }
tr.summary td { font-weight: 600; background: #f5f5f5; }
.meta { display: flex; justify-content: space-between; }
.title { text-align: center; font-size: 1.8rem; font-weight: 600; text-decoration: underline; }
</style>
</head>
<body>
<div class="meta">
  <div>
    <strong>To,</strong><br>
    {{.CustomerName}}<br>
    {{.Contact}}<br>
    {{.Email}}
  </div>
  <div>
    <strong>Invoice No:</strong> {{.InvID}}<br>
    <strong>Date:</strong> {{.Date}}
  </div>
</div>
<div class="title">Quotation</div>
<table>
  <thead>
    <tr>
      <th style="width:7%">S.N.</th>
      <th style="width:50%">Description</th>
      <th style="width:15%">Unit Price</th>
      <th style="width:12%">Qty</th>
      <th style="width:20%">Amount</th>
    </tr>
  </thead>
  <tbody>
    {{range .Lines}}
    <tr>
      <td>{{.Index}}</td>
      <td class="desc">
        <div>{{.ProductName}}</div>
        {{range .Bullets}}<div>{{.}}</div>{{end}}
      </td>
      <td>{{.UnitPrice}}</td>
      <td>{{.Quantity}}</td>
      <td>{{.LineTotal}}</td>
    </tr>
    {{end}}
    <tr class="summary">
      <td colspan="2" style="border:none"></td>
      <td>Grant amount</td>
      <td>{{.TotalUnits}}</td>
      <td>{{.GrandTotal}}</td>
    </tr>
  </tbody>
</table>
</body>
</html>
`

var billTpl = template.Must(template.New("bill").Parse(billTemplate))

type billLine struct {
	Index       int
	ProductName string
	Bullets     []string
	UnitPrice   string
	Quantity    string
	LineTotal   string
}

type billPage struct {
	InvID        string
	CustomerName string
	Contact      string
	Email        string
	Date         string
	Lines        []billLine
	TotalUnits   string
	GrandTotal   string
}

// RenderBill produces the HTML screen form of a bill summary.
func RenderBill(s *billing.Summary) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil summary", domain.ErrRender)
	}
	page := billPage{
		InvID:        s.InvID,
		CustomerName: s.CustomerName,
		Contact:      s.Contact,
		Email:        s.Email,
		Date:         formatDate(s.IssueDate),
		TotalUnits:   billing.Jobs(s.TotalUnits),
		GrandTotal:   billing.FormatINR(s.GrandTotal),
	}
	for _, l := range s.Lines {
		page.Lines = append(page.Lines, billLine{
			Index:       l.Index,
			ProductName: l.ProductName,
			Bullets:     billing.DescriptionLines(l.Description),
			UnitPrice:   billing.FormatINR(l.Amount),
			Quantity:    billing.Jobs(l.Quantity),
			LineTotal:   billing.FormatINR(l.LineTotal),
		})
	}

	var buf bytes.Buffer
	if err := billTpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
