package handlers

import (
	"net/http"
	"time"

	"go-sales-diary/internal/export"
	"go-sales-diary/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/export/csv ---
func (a *API) ExportCSV(c *gin.Context) {
	data, err := export.SalesCSV(a.Sales.List())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sales_report.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// --- GET: /api/export/backup?month=YYYY-MM ---
// Full JSON dump, optionally narrowed to one month of sales.
func (a *API) ExportBackup(c *gin.Context) {
	month := c.Query("month")
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be YYYY-MM"})
			return
		}
	}

	var profilePtr *models.UserProfile
	if profile, ok := a.Users.Get(); ok {
		profilePtr = &profile
	}

	data, err := export.Backup(profilePtr, a.Sales.List(), a.Complaints.List(), month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build backup"})
		return
	}

	name := "backup.json"
	if month != "" {
		name = "backup_" + month + ".json"
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/json", data)
}
