package report

import (
	"bytes"
	"fmt"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"time"
)

var (
	pdfHeaders = []string{"Order", "Customer", "Cat", "Quantity", "Unit Price", "Total"}
	pdfWidths  = []float64{25, 45, 40, 25, 27, 28}
)

// generatePDF renders the per-day detail rows as an A4 table.
func generatePDF(rows []DetailRow, day time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Cat Shop Sales Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	total := decimal.Zero
	items := 0
	for _, row := range rows {
		total = total.Add(decimal.NewFromFloat(row.TotalAmount))
		items += row.Quantity
	}
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "Date: "+day.Format(DATE_LAYOUT), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Orders: %d  Cats sold: %d  Total: %s", len(rows), items, total.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 11)
	for i, header := range pdfHeaders {
		ln := 0
		if i == len(pdfHeaders)-1 {
			ln = 1
		}
		pdf.CellFormat(pdfWidths[i], 10, header, "1", ln, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.CellFormat(pdfWidths[0], 10, row.OrderId, "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfWidths[1], 10, row.CustomerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfWidths[2], 10, row.CatName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfWidths[3], 10, fmt.Sprintf("%d", row.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfWidths[4], 10, decimal.NewFromFloat(row.UnitPrice).StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfWidths[5], 10, decimal.NewFromFloat(row.TotalAmount).StringFixed(2), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
