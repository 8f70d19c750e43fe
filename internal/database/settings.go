package database

import (
	"fmt"

	"go-sales-diary/internal/models"
	"go-sales-diary/internal/store"
)

// Settings covers the leftover preferences - currently just the theme.
// The theme is stored as a bare string, not JSON, same as it always was.
type Settings struct {
	store store.Store
}

func NewSettings(s store.Store) *Settings {
	return &Settings{store: s}
}

// Theme returns the saved theme, defaulting to light when unset or
// when the stored value is not a theme we know.
func (r *Settings) Theme() string {
	v, ok := r.store.Get(store.KeyTheme)
	if !ok || (v != models.ThemeLight && v != models.ThemeDark) {
		return models.ThemeLight
	}
	return v
}

func (r *Settings) SetTheme(theme string) error {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return r.store.Set(store.KeyTheme, theme)
}
