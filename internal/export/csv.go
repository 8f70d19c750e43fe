// Package export formats reports for the outside world: spreadsheet
// CSV, printable PDF, and the full JSON backup. It only reads the
// entities it is handed; nothing here touches the store.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"go-sales-diary/internal/models"
)

// SalesCSV flattens every report into one row per line item.
func SalesCSV(sales []models.DailyReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Date", "Product", "Quantity", "Unit Price", "Total Value"})

	for _, report := range sales {
		for _, item := range report.Items {
			w.Write([]string{
				report.Date,
				item.ProductName,
				fmt.Sprintf("%d", item.Quantity),
				fmt.Sprintf("%g", item.Price),
				fmt.Sprintf("%g", item.Price*float64(item.Quantity)),
			})
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
