package reports

import (
	"go-sales-diary/internal/models"
)

// ComputeTotals derives both report totals from the item list. This is
// the only place totals are ever computed; callers never supply them.
func ComputeTotals(items []models.SaleItem) (qty int, value float64) {
	for _, it := range items {
		qty += it.Quantity
		value += it.Price * float64(it.Quantity)
	}
	return qty, value
}

// Recompute returns r with its totals re-derived from its items.
func Recompute(r models.DailyReport) models.DailyReport {
	r.TotalQty, r.TotalValue = ComputeTotals(r.Items)
	return r
}

// Upgrade folds the deprecated single-image field into the image list.
// It runs once per load, before any other operation touches a record,
// so the rest of the package only ever sees the current shape. When
// both fields somehow exist, the list wins and the legacy value drops.
func Upgrade(sales []models.DailyReport) []models.DailyReport {
	for i := range sales {
		if sales[i].BillImage == "" {
			continue
		}
		if len(sales[i].BillImages) == 0 {
			sales[i].BillImages = []string{sales[i].BillImage}
		}
		sales[i].BillImage = ""
	}
	return sales
}

// SaveEntry merges a new batch of items and bill images into the report
// for date and returns the next collection state.
//
// First save of the day creates the report. Later saves append: items
// concatenate in order with no deduplication (selling the same product
// twice really is two lines), image lists concatenate, and both totals
// are recomputed from the full item list. Saving items onto a week-off
// day clears the flag - a day with sales is not a day off.
func SaveEntry(sales []models.DailyReport, date string, newItems []models.SaleItem, newImages []string) []models.DailyReport {
	for i, r := range sales {
		if r.Date != date {
			continue
		}
		r.Items = append(append([]models.SaleItem{}, r.Items...), newItems...)
		r.BillImages = append(append([]string{}, existingImages(r)...), newImages...)
		r.BillImage = ""
		r.IsWeekOff = false
		sales[i] = Recompute(r)
		return sales
	}

	qty, value := ComputeTotals(newItems)
	return append(sales, models.DailyReport{
		Date:       date,
		Items:      newItems,
		TotalQty:   qty,
		TotalValue: value,
		BillImages: newImages,
	})
}

// MarkWeekOff records date as a non-working day. This is a destructive
// overwrite, not a merge: whatever was logged for that day is wiped and
// both totals go to zero. Callers confirm with the user before calling.
func MarkWeekOff(sales []models.DailyReport, date string) []models.DailyReport {
	for i, r := range sales {
		if r.Date != date {
			continue
		}
		r.Items = []models.SaleItem{}
		r.TotalQty = 0
		r.TotalValue = 0
		r.IsWeekOff = true
		sales[i] = r
		return sales
	}

	return append(sales, models.DailyReport{
		Date:      date,
		Items:     []models.SaleItem{},
		IsWeekOff: true,
	})
}

// existingImages resolves the image list of a possibly-legacy record.
func existingImages(r models.DailyReport) []string {
	if len(r.BillImages) > 0 {
		return r.BillImages
	}
	if r.BillImage != "" {
		return []string{r.BillImage}
	}
	return nil
}
