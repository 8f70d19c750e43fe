package store

import (
	"encoding/json"
	"errors"
	"log"
)

// Fixed keys for the four persisted blobs. These match the keys the
// data was originally stored under, so an imported backup lines up.
const (
	KeyUser  = "app_user_profile"
	KeySales = "app_sales_data"
	KeyCRM   = "app_crm_data"
	KeyTheme = "app_theme_mode"
)

// DefaultQuota is the total capacity of the local store (5 MiB, the
// usual browser localStorage budget the app grew up with).
const DefaultQuota = 5 << 20

// ErrQuotaExceeded means a write would not fit. The previously stored
// value is untouched; callers must warn the user, not swallow this.
var ErrQuotaExceeded = errors.New("local store is full")

// Store is the persistence contract: a flat string-keyed blob store.
// Implementations are SQLite (the real one) and Memory (for tests).
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (string, bool)
	// Set replaces the value under key. Returns ErrQuotaExceeded when
	// the write would blow the capacity budget; the old value survives.
	Set(key, value string) error
	// Delete removes the key. Missing keys are not an error.
	Delete(key string) error
}

// ReadJSON decodes the blob at key into T. A missing key OR a corrupt
// blob both come back as (zero, false): a damaged record degrades to
// "no data" instead of taking the whole app down.
func ReadJSON[T any](s Store, key string) (T, bool) {
	var v T
	raw, ok := s.Get(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("⚠️ store: corrupt blob at %q, treating as empty: %v", key, err)
		var zero T
		return zero, false
	}
	return v, true
}

// WriteJSON serializes v and stores it under key in one write.
func WriteJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
