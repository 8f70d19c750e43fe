package reports

import (
	"errors"
	"fmt"

	"go-sales-diary/internal/models"
)

// ErrIndexOutOfRange means the caller pointed at an item or image slot
// that does not exist. That is a contract violation by the caller, so
// it fails loudly instead of clamping to the nearest valid index.
var ErrIndexOutOfRange = errors.New("index out of range")

// RemoveItem drops the item at index i and recomputes totals. When the
// last item goes, empty=true: the report must be deleted outright - an
// empty non-week-off report is not a state we ever persist.
func RemoveItem(r models.DailyReport, i int) (out models.DailyReport, empty bool, err error) {
	if i < 0 || i >= len(r.Items) {
		return r, false, fmt.Errorf("remove item %d of %d: %w", i, len(r.Items), ErrIndexOutOfRange)
	}

	items := append([]models.SaleItem{}, r.Items...)
	r.Items = append(items[:i], items[i+1:]...)
	if len(r.Items) == 0 {
		return r, true, nil
	}
	return Recompute(r), false, nil
}

// ReplaceItem swaps the item at index i for the edited one and
// recomputes totals from the full list.
func ReplaceItem(r models.DailyReport, i int, item models.SaleItem) (models.DailyReport, error) {
	if i < 0 || i >= len(r.Items) {
		return r, fmt.Errorf("replace item %d of %d: %w", i, len(r.Items), ErrIndexOutOfRange)
	}

	items := append([]models.SaleItem{}, r.Items...)
	items[i] = item
	r.Items = items
	return Recompute(r), nil
}

// RemoveImage drops the bill image at index i. Totals are untouched;
// images carry no value. The legacy single-image field, if still set,
// counts as the one-element list it stands for.
func RemoveImage(r models.DailyReport, i int) (models.DailyReport, error) {
	images := existingImages(r)
	if i < 0 || i >= len(images) {
		return r, fmt.Errorf("remove image %d of %d: %w", i, len(images), ErrIndexOutOfRange)
	}

	images = append([]string{}, images...)
	r.BillImages = append(images[:i], images[i+1:]...)
	r.BillImage = ""
	return r, nil
}
