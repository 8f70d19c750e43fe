package database

import (
	"go-sales-diary/internal/models"
	"go-sales-diary/internal/reports"
	"go-sales-diary/internal/store"
)

// Sales is the repository for the daily report collection.
type Sales struct {
	store store.Store
}

func NewSales(s store.Store) *Sales {
	return &Sales{store: s}
}

// List returns a fresh snapshot of every daily report. Legacy
// single-image records are upgraded to the current shape on the way
// out, before anything else can touch them.
func (r *Sales) List() []models.DailyReport {
	sales, _ := store.ReadJSON[[]models.DailyReport](r.store, store.KeySales)
	return reports.Upgrade(sales)
}

// Get returns the report for one date, if any.
func (r *Sales) Get(date string) (models.DailyReport, bool) {
	for _, rep := range r.List() {
		if rep.Date == date {
			return rep, true
		}
	}
	return models.DailyReport{}, false
}

// SaveEntry merges a batch of new items and bill images into date's
// report (creating it on first save) and persists the collection.
func (r *Sales) SaveEntry(date string, items []models.SaleItem, images []string) error {
	return r.write(reports.SaveEntry(r.List(), date, items, images))
}

// MarkWeekOff overwrites date's report with a week-off marker. The
// caller confirms with the user first; this wipes any logged sales.
func (r *Sales) MarkWeekOff(date string) error {
	return r.write(reports.MarkWeekOff(r.List(), date))
}

// Upsert replaces the report stored under date, or inserts it. Totals
// are recomputed from the items before the write - caller-supplied
// totals are never trusted.
func (r *Sales) Upsert(date string, rep models.DailyReport) error {
	rep.Date = date
	rep.BillImage = ""
	if rep.IsWeekOff {
		rep.Items = []models.SaleItem{} // week off and sale items are mutually exclusive
	}
	rep = reports.Recompute(rep)

	sales := r.List()
	for i := range sales {
		if sales[i].Date == date {
			sales[i] = rep
			return r.write(sales)
		}
	}
	return r.write(append(sales, rep))
}

// Delete removes the whole report for date. Deleting a date that was
// never saved is ErrNotFound.
func (r *Sales) Delete(date string) error {
	sales := r.List()
	kept := sales[:0]
	for _, rep := range sales {
		if rep.Date != date {
			kept = append(kept, rep)
		}
	}
	if len(kept) == len(sales) {
		return ErrNotFound
	}
	return r.write(kept)
}

// RemoveItem drops one line item. Removing the last item deletes the
// whole report (deleted=true) - empty reports are never persisted.
func (r *Sales) RemoveItem(date string, index int) (rep models.DailyReport, deleted bool, err error) {
	sales := r.List()
	for i := range sales {
		if sales[i].Date != date {
			continue
		}
		rep, deleted, err = reports.RemoveItem(sales[i], index)
		if err != nil {
			return models.DailyReport{}, false, err
		}
		if deleted {
			return rep, true, r.Delete(date)
		}
		sales[i] = rep
		return rep, false, r.write(sales)
	}
	return models.DailyReport{}, false, ErrNotFound
}

// EditItem replaces one line item with its edited version.
func (r *Sales) EditItem(date string, index int, item models.SaleItem) (models.DailyReport, error) {
	sales := r.List()
	for i := range sales {
		if sales[i].Date != date {
			continue
		}
		rep, err := reports.ReplaceItem(sales[i], index, item)
		if err != nil {
			return models.DailyReport{}, err
		}
		sales[i] = rep
		return rep, r.write(sales)
	}
	return models.DailyReport{}, ErrNotFound
}

// RemoveImage drops one bill image from date's report.
func (r *Sales) RemoveImage(date string, index int) (models.DailyReport, error) {
	sales := r.List()
	for i := range sales {
		if sales[i].Date != date {
			continue
		}
		rep, err := reports.RemoveImage(sales[i], index)
		if err != nil {
			return models.DailyReport{}, err
		}
		sales[i] = rep
		return rep, r.write(sales)
	}
	return models.DailyReport{}, ErrNotFound
}

func (r *Sales) write(sales []models.DailyReport) error {
	return store.WriteJSON(r.store, store.KeySales, sales)
}
