package database

import (
	"testing"

	"go-sales-diary/internal/models"
	"go-sales-diary/internal/store"
)

func TestUsersSingleton(t *testing.T) {
	repo := NewUsers(store.NewMemory())

	if _, ok := repo.Get(); ok {
		t.Fatal("fresh store should have no profile")
	}

	first := models.UserProfile{Name: "Ravi", EmployeeID: "E1", StoreName: "Croma", MonthlyTarget: 100000}
	if err := repo.Save(first); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Logging in again overwrites, never appends.
	second := models.UserProfile{Name: "Asha", EmployeeID: "E2", StoreName: "Reliance", MonthlyTarget: 200000}
	if err := repo.Save(second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := repo.Get()
	if !ok || got != second {
		t.Fatalf("expected second profile, got %+v (ok=%v)", got, ok)
	}
}

func TestUsersClear(t *testing.T) {
	mem := store.NewMemory()
	repo := NewUsers(mem)

	if err := repo.Save(models.UserProfile{Name: "Ravi", EmployeeID: "E1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Some sales on the side.
	if err := NewSales(mem).SaveEntry("2024-05-01", []models.SaleItem{item("A", 1, 10)}, nil); err != nil {
		t.Fatalf("save entry: %v", err)
	}

	if err := repo.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := repo.Get(); ok {
		t.Fatal("profile should be gone after logout")
	}

	// Logout only deletes the profile; the diary stays.
	if got := NewSales(mem).List(); len(got) != 1 {
		t.Fatalf("sales must survive logout, got %+v", got)
	}
}

func TestSettingsTheme(t *testing.T) {
	repo := NewSettings(store.NewMemory())

	if got := repo.Theme(); got != models.ThemeLight {
		t.Fatalf("default theme should be light, got %q", got)
	}

	if err := repo.SetTheme(models.ThemeDark); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := repo.Theme(); got != models.ThemeDark {
		t.Fatalf("expected dark, got %q", got)
	}

	if err := repo.SetTheme("neon"); err == nil {
		t.Fatal("unknown theme must be rejected")
	}
}

func TestSettingsGarbageThemeFallsBack(t *testing.T) {
	mem := store.NewMemory()
	if err := mem.Set(store.KeyTheme, "blurple"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if got := NewSettings(mem).Theme(); got != models.ThemeLight {
		t.Fatalf("garbage value should fall back to light, got %q", got)
	}
}
