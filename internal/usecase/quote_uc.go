package usecase

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Vinaypunani/build-gaming/internal/compat"
	"github.com/Vinaypunani/build-gaming/internal/domain"
	"github.com/Vinaypunani/build-gaming/internal/pricing"
)

const (
	quoteSheet  = "Quote"
	issuesSheet = "Compatibility"
)

// QuoteUC arma una cotización descargable del armado actual.
type QuoteUC struct {
	now func() time.Time
}

func NewQuoteUC() *QuoteUC { return &QuoteUC{now: time.Now} }

func (uc *QuoteUC) ExportXLSX(b *domain.Build, bd pricing.Breakdown, rep compat.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quoteSheet); err != nil {
		return err
	}
	header := []any{"Slot", "Component", "Brand", "Price", "You save"}
	if err := f.SetSheetRow(quoteSheet, "A1", &header); err != nil {
		return err
	}
	row := 2
	for _, s := range domain.Slots() {
		line := []any{s.Label(), "-", "", nil, nil}
		if c, ok := b.Get(s); ok {
			line = []any{s.Label(), c.Name, c.Brand, c.Price.InexactFloat64(), c.Discount.InexactFloat64()}
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(quoteSheet, cell, &line); err != nil {
			return err
		}
		row++
	}
	row++
	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal", bd.Subtotal.InexactFloat64()},
		{"Savings", bd.Savings.InexactFloat64()},
		{"Shipping", bd.ShippingFee.InexactFloat64()},
		{"Assembly", bd.AssemblyFee.InexactFloat64()},
		{"Total", bd.GrandTotal.InexactFloat64()},
	}
	for _, t := range totals {
		label, _ := excelize.CoordinatesToCellName(3, row)
		value, _ := excelize.CoordinatesToCellName(4, row)
		if err := f.SetCellValue(quoteSheet, label, t.label); err != nil {
			return err
		}
		if err := f.SetCellValue(quoteSheet, value, t.value); err != nil {
			return err
		}
		row++
	}
	stamp, _ := excelize.CoordinatesToCellName(1, row+1)
	if err := f.SetCellValue(quoteSheet, stamp, "Generated "+uc.now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if _, err := f.NewSheet(issuesSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(issuesSheet, "A1", &[]any{"Rule", "Slots", "Reason"}); err != nil {
		return err
	}
	if rep.Pass {
		if err := f.SetCellValue(issuesSheet, "A2", "No compatibility issues"); err != nil {
			return err
		}
	}
	for i, v := range rep.Violations {
		slots := ""
		for j, s := range v.Slots {
			if j > 0 {
				slots += ", "
			}
			slots += s.Label()
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(issuesSheet, cell, &[]any{v.Rule, slots, v.Reason}); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(quoteSheet, "A", "B", 28); err != nil {
		return err
	}
	return f.Write(w)
}
