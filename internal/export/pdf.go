package export

import (
	"bytes"
	"fmt"
	"time"

	"go-sales-diary/internal/models"
	"go-sales-diary/internal/reports"

	"github.com/jung-kurt/gofpdf/v2"
)

// DailyPDF renders one day's report as a printable A4 sheet: header,
// item table, totals. The core PDF fonts have no rupee glyph, so
// amounts are prefixed "Rs." here.
func DailyPDF(user models.UserProfile, report models.DailyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(180, 10, "Daily Sales Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(180, 6, fmt.Sprintf("%s - %s", user.Name, user.StoreName), "", 1, "C", false, 0, "")

	day, err := time.Parse("2006-01-02", report.Date)
	dateLabel := report.Date
	if err == nil {
		dateLabel = day.Format("02-Jan-2006 (Monday)")
	}
	pdf.CellFormat(180, 6, fmt.Sprintf("Date: %s", dateLabel), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if report.IsWeekOff {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(180, 10, "Week Off", "1", 1, "C", false, 0, "")
		return output(pdf)
	}

	// Item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(12, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(88, 7, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Unit Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Value", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, item := range report.Items {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}

		name := item.ProductName
		if len(name) > 45 {
			name = name[:42] + "..."
		}

		pdf.CellFormat(12, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", true, 0, "")
		pdf.CellFormat(88, 6, name, "1", 0, "L", true, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 6, "Rs. "+reports.FormatAmount(item.Price), "1", 0, "R", true, 0, "")
		pdf.CellFormat(30, 6, "Rs. "+reports.FormatAmount(item.Price*float64(item.Quantity)), "1", 1, "R", true, 0, "")
	}

	// Totals row
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(100, 7, "Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 7, fmt.Sprintf("%d", report.TotalQty), "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Rs. "+reports.FormatAmount(report.TotalValue), "1", 1, "R", true, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(180, 5, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "L", false, 0, "")

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
