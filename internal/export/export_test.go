package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"go-sales-diary/internal/models"
)

func sampleSales() []models.DailyReport {
	return []models.DailyReport{
		{
			Date: "2024-05-01",
			Items: []models.SaleItem{
				{ID: "1", ProductName: "Bajaj Mixer", Quantity: 2, Price: 3000},
				{ID: "2", ProductName: "Geyser, 15L", Quantity: 1, Price: 8000},
			},
			TotalQty: 3, TotalValue: 14000,
		},
		{
			Date:     "2024-06-02",
			Items:    []models.SaleItem{{ID: "3", ProductName: "Iron", Quantity: 1, Price: 700}},
			TotalQty: 1, TotalValue: 700,
		},
		{Date: "2024-05-05", IsWeekOff: true},
	}
}

func TestSalesCSV(t *testing.T) {
	data, err := SalesCSV(sampleSales())
	if err != nil {
		t.Fatalf("csv: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// Header plus one row per item; week-off days contribute nothing.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d: %v", len(rows), rows)
	}
	if rows[0][0] != "Date" {
		t.Fatalf("missing header: %v", rows[0])
	}
	// The comma in the product name survives proper CSV quoting.
	if rows[2][1] != "Geyser, 15L" {
		t.Fatalf("product name mangled: %v", rows[2])
	}
	if rows[1][4] != "6000" {
		t.Fatalf("line value wrong: %v", rows[1])
	}
}

func TestBackupMonthFilter(t *testing.T) {
	user := models.UserProfile{Name: "Ravi"}
	complaints := []models.Complaint{{ID: "c1", IssueType: models.IssueInstallation}}

	data, err := Backup(&user, sampleSales(), complaints, "2024-05")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}

	var file BackupFile
	if err := json.Unmarshal(data, &file); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(file.Sales) != 2 {
		t.Fatalf("expected 2 May reports, got %d", len(file.Sales))
	}
	// Complaints are never month-filtered.
	if len(file.Complaints) != 1 {
		t.Fatalf("complaints missing: %+v", file.Complaints)
	}
	if file.User == nil || file.User.Name != "Ravi" {
		t.Fatalf("profile missing: %+v", file.User)
	}
}

func TestBackupWithoutFilterOrUser(t *testing.T) {
	data, err := Backup(nil, sampleSales(), nil, "")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}

	var file BackupFile
	if err := json.Unmarshal(data, &file); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(file.Sales) != 3 {
		t.Fatalf("expected all reports, got %d", len(file.Sales))
	}
	if file.User != nil {
		t.Fatalf("expected no user, got %+v", file.User)
	}
}

func TestDailyPDF(t *testing.T) {
	user := models.UserProfile{Name: "Ravi", StoreName: "Croma"}

	data, err := DailyPDF(user, sampleSales()[0])
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}

	// Week-off sheet renders too.
	data, err = DailyPDF(user, models.DailyReport{Date: "2024-05-05", IsWeekOff: true})
	if err != nil {
		t.Fatalf("week-off pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("week-off output is not a PDF")
	}
}
