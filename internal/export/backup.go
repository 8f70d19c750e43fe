package export

import (
	"encoding/json"
	"strings"
	"time"

	"go-sales-diary/internal/models"
)

// BackupFile is the portable dump of everything the app knows.
type BackupFile struct {
	ExportedAt time.Time            `json:"exportedAt"`
	User       *models.UserProfile  `json:"user,omitempty"`
	Sales      []models.DailyReport `json:"sales"`
	Complaints []models.Complaint   `json:"complaints"`
}

// Backup marshals a full data dump. month, when non-empty, is a
// "YYYY-MM" filter limiting which sales go into the file (the
// complaints list is always complete - tickets are not monthly data).
func Backup(user *models.UserProfile, sales []models.DailyReport, complaints []models.Complaint, month string) ([]byte, error) {
	if month != "" {
		filtered := make([]models.DailyReport, 0, len(sales))
		for _, r := range sales {
			if strings.HasPrefix(r.Date, month+"-") {
				filtered = append(filtered, r)
			}
		}
		sales = filtered
	}

	return json.MarshalIndent(BackupFile{
		ExportedAt: time.Now(),
		User:       user,
		Sales:      sales,
		Complaints: complaints,
	}, "", "  ")
}
