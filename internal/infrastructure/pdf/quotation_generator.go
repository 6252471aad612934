// Package pdf renders the exported quotation document for an invoice.
//
// A4 page layout, top to bottom:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER IMAGE (full width, every page)                      │
//	│  To, customer / contact / email   │  Invoice No + Date      │
//	│                      Quotation                              │
//	│                      ─────────                              │
//	│  Dear Sir/Madam, <boilerplate paragraph>                    │
//	│  TABLE: S.N. | Description | Unit Price | Qty | Amount      │
//	│                     Grant amount | n Job(s) | total INR     │
//	│  FOOTER IMAGE (full width, bottom of every page)            │
//	└─────────────────────────────────────────────────────────────┘
//
// Header and footer artwork are optional: a missing file is logged and
// skipped so the export still produces a document.
package pdf

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appconfig "github.com/tryidoltech/Tryidol-Inv/pkg/config"
	"github.com/tryidoltech/Tryidol-Inv/pkg/logger"

	"github.com/tryidoltech/Tryidol-Inv/internal/domain/billing"
)

const (
	headerImageHeight = 20
	footerImageHeight = 15
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

const boilerplate = "Thank you for choosing Tryidol Technologies. We are committed to supporting " +
	"your business throughout its journey and aim to make things simple and hassle-free for you. " +
	"Based on your stated requirements, we are providing the cost analysis of our services below."

// QuotationGenerator implements billing.QuotationGenerator using Maroto v2.
type QuotationGenerator struct {
	assets appconfig.AssetsConfig
	log    *logger.Logger
}

// NewQuotationGenerator builds the generator.
func NewQuotationGenerator(assets appconfig.AssetsConfig, log *logger.Logger) *QuotationGenerator {
	return &QuotationGenerator{assets: assets, log: log}
}

// GenerateQuotationPDF renders the bill summary and returns the PDF bytes.
func (g *QuotationGenerator) GenerateQuotationPDF(_ context.Context, summary *billing.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Quotation "+summary.InvID, true).
		WithAuthor("Tryidol Technologies", true).
		Build()

	m := maroto.New(cfg)

	// Fixed artwork repeats on every page: header at the top, footer pinned
	// to the bottom.
	if r, ok := g.imageRow(g.assets.HeaderImage, headerImageHeight); ok {
		if err := m.RegisterHeader(r); err != nil {
			return nil, fmt.Errorf("pdf: register header: %w", err)
		}
	}
	if r, ok := g.imageRow(g.assets.FooterImage, footerImageHeight); ok {
		if err := m.RegisterFooter(r); err != nil {
			return nil, fmt.Errorf("pdf: register footer: %w", err)
		}
	}

	m.AddRows(customerRow(summary))
	m.AddRows(titleRows()...)
	m.AddRows(boilerplateRows()...)

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(summary.Lines) {
		m.AddRows(r)
	}

	m.AddRows(row.New(4))
	m.AddRows(grantAmountRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// imageRow returns a full-width image row, or ok=false when the asset is
// missing so the caller can keep rendering without it.
func (g *QuotationGenerator) imageRow(path string, height float64) (core.Row, bool) {
	if path == "" {
		return nil, false
	}
	if _, err := os.Stat(path); err != nil {
		g.log.Warn().Str("asset", path).Err(err).Msg("quotation artwork missing, skipping")
		return nil, false
	}
	return row.New(height).Add(
		image.NewFromFileCol(12, path, props.Rect{Percent: 100, Center: true}),
	), true
}

// customerRow: customer block on the left, invoice number and date on the right.
func customerRow(s *billing.Summary) core.Row {
	return row.New(24).Add(
		col.New(7).Add(
			text.New("To,", props.Text{Style: fontstyle.Bold, Size: 11, Top: 1}),
			text.New(s.CustomerName, props.Text{Size: 10, Top: 8}),
			text.New(s.Contact, props.Text{Size: 9, Top: 13, Color: colorGray}),
			text.New(s.Email, props.Text{Size: 9, Top: 18, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Invoice No: "+s.InvID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
			text.New("Date: "+s.IssueDate.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// titleRows: centered "Quotation" with an underline beneath it.
func titleRows() []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("Quotation", props.Text{
				Style: fontstyle.Bold, Size: 22, Align: align.Center, Top: 1,
			}),
		)),
		row.New(2).Add(
			col.New(4),
			line.NewCol(4, props.Line{Thickness: 0.5}),
			col.New(4),
		),
	}
}

// boilerplateRows: salutation plus the fixed introductory paragraph.
func boilerplateRows() []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Dear Sir/Madam,", props.Text{Size: 12, Top: 2}),
		)),
		row.New(16).Add(col.New(12).Add(
			text.New(boilerplate, props.Text{Size: 9, Top: 1}),
		)),
	}
}

// tableHeaderRow: items table header on the 12-column grid
// (S.N. 1, Description 6, Unit Price 2, Qty 1, Amount 2).
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a, Top: 1.5,
		}))
	}
	return row.New(8).Add(
		h("S.N.", 1, align.Center),
		h("Description", 6, align.Center),
		h("Unit Price", 2, align.Center),
		h("Qty", 1, align.Center),
		h("Amount", 2, align.Center),
	).WithStyle(&props.Cell{
		BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245},
		BorderType:      border.Full,
		BorderThickness: 0.1,
	})
}

// tableItemRows: one row per line item; the description cell stacks the
// product name above one bullet per comma-separated clause, and the row height
// grows with the number of lines.
func tableItemRows(lines []billing.Line) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		descLines := append([]string{l.ProductName}, billing.DescriptionLines(l.Description)...)
		height := float64(4 + 4*len(descLines))

		r := row.New(height).WithStyle(&props.Cell{BorderType: border.Full, BorderThickness: 0.1}).Add(
			col.New(1).Add(text.New(strconv.Itoa(l.Index), props.Text{
				Size: 9, Align: align.Center, Top: 1,
			})),
			col.New(6).Add(text.New(strings.Join(descLines, "\n"), props.Text{
				Size: 9, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(billing.FormatINR(l.Amount), props.Text{
				Size: 9, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(billing.Jobs(l.Quantity), props.Text{
				Size: 9, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(billing.FormatINR(l.LineTotal), props.Text{
				Size: 9, Top: 1, Left: 1,
			})),
		)
		result = append(result, r)
	}
	return result
}

// grantAmountRow: the summary table, pushed toward the right margin.
func grantAmountRow(s *billing.Summary) core.Row {
	style := &props.Cell{
		BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245},
		BorderType:      border.Full,
		BorderThickness: 0.1,
	}
	cell := func(size int, label string) core.Col {
		return col.New(size).WithStyle(style).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 1.5, Left: 1,
		}))
	}
	return row.New(8).Add(
		col.New(5), // left spacer keeps the summary table against the right margin
		cell(3, "Grant amount"),
		cell(2, billing.Jobs(s.TotalUnits)),
		cell(2, billing.FormatINR(s.GrandTotal)),
	)
}
