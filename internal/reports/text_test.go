package reports

import (
	"strings"
	"testing"
	"time"

	"go-sales-diary/internal/models"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{250, "250"},
		{1050, "1,050"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{1050.5, "1,050.50"},
		{-123456, "-1,23,456"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDaily(t *testing.T) {
	user := models.UserProfile{Name: "Ravi", StoreName: "Croma Andheri", MonthlyTarget: 500000}
	report := Recompute(models.DailyReport{
		Date: "2024-05-15",
		Items: []models.SaleItem{
			item("Bajaj Mixer Grinder 750W", 2, 3000),
			item("Storage Geyser 15L", 1, 8000),
			item("MR Air Fryer", 1, 6000),
		},
	})
	allSales := []models.DailyReport{
		report,
		Recompute(models.DailyReport{Date: "2024-05-10", Items: []models.SaleItem{item("Bajaj Dry Iron", 1, 700)}}),
		// Later in the month: not part of MTD as of the 15th.
		Recompute(models.DailyReport{Date: "2024-05-20", Items: []models.SaleItem{item("OTG 60", 1, 12000)}}),
		// Different month entirely.
		Recompute(models.DailyReport{Date: "2024-04-30", Items: []models.SaleItem{item("Geyser", 1, 9000)}}),
	}

	text := FormatDaily(user, report, allSales)

	for _, want := range []string{
		"Name:Ravi",
		"Date: 15/05/24",
		"Store Location :Croma Andheri",
		"Today’s Sale qty=4",
		"Today’s Sale Value:= 20,000",
		"Bajaj Mixer Qty: =02",
		"Storage geyser Qty: 01",
		"MR Air fiyar=01",
		"Bajaj dry iron=00",
		"MTD Sale Value = 20,700",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n---\n%s", want, text)
		}
	}
}

func TestFormatDailyCategoriesNeedAllKeywords(t *testing.T) {
	user := models.UserProfile{Name: "R"}

	// An instant geyser counts for the instant bucket, not storage:
	// each bucket requires every one of its keywords to match.
	report := Recompute(models.DailyReport{
		Date:  "2024-05-01",
		Items: []models.SaleItem{item("Bajaj Instant Geyser 3L", 2, 3500)},
	})
	text := FormatDaily(user, report, []models.DailyReport{report})
	if !strings.Contains(text, "Instant geyser Qty: 02") {
		t.Errorf("instant geyser not counted:\n%s", text)
	}
	if !strings.Contains(text, "Storage geyser Qty: 00") {
		t.Errorf("instant geyser leaked into storage bucket:\n%s", text)
	}
}

func TestComputeMonthStats(t *testing.T) {
	sales := []models.DailyReport{
		{Date: "2024-05-01", TotalValue: 30000},
		{Date: "2024-05-20", TotalValue: 20000},
		{Date: "2024-04-28", TotalValue: 99999}, // other month
		{Date: "garbage", TotalValue: 11111},    // unparseable, skipped
	}
	month := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	stats := ComputeMonthStats(sales, 100000, month)
	if stats.MTDValue != 50000 {
		t.Fatalf("expected MTD 50000, got %v", stats.MTDValue)
	}
	if stats.Percentage != 50 {
		t.Fatalf("expected 50%%, got %v", stats.Percentage)
	}
	if stats.Balance != 50000 {
		t.Fatalf("expected balance 50000, got %v", stats.Balance)
	}
	if stats.MonthName != "May 2024" {
		t.Fatalf("expected month name May 2024, got %q", stats.MonthName)
	}
}

func TestComputeMonthStatsCapsAndFloors(t *testing.T) {
	sales := []models.DailyReport{{Date: "2024-05-01", TotalValue: 150000}}
	month := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	stats := ComputeMonthStats(sales, 100000, month)
	if stats.Percentage != 100 {
		t.Fatalf("percentage must cap at 100, got %v", stats.Percentage)
	}
	if stats.Balance != 0 {
		t.Fatalf("balance must floor at 0, got %v", stats.Balance)
	}

	// Zero target: percentage stays 0 rather than dividing by zero.
	stats = ComputeMonthStats(sales, 0, month)
	if stats.Percentage != 0 {
		t.Fatalf("zero target must give 0%%, got %v", stats.Percentage)
	}
}
