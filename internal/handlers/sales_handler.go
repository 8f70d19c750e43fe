package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go-sales-diary/internal/export"
	"go-sales-diary/internal/models"
	"go-sales-diary/internal/reports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntryItem struct {
	ProductName string  `json:"productName" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"` // unit price
}

type EntryRequest struct {
	Date       string      `json:"date" binding:"required"`
	WeekOff    bool        `json:"weekOff"`
	Items      []EntryItem `json:"items"`
	BillImages []string    `json:"billImages"`
}

// --- GET: /api/sales ---
func (a *API) ListSales(c *gin.Context) {
	sales := a.Sales.List()
	if sales == nil {
		sales = []models.DailyReport{}
	}
	c.JSON(http.StatusOK, sales)
}

// --- POST: /api/sales ---
// One endpoint for both submit shapes: a normal entry (items are
// merged into the day cumulatively) or a week-off marker (which wipes
// the day - the UI confirms with the user before sending it).
func (a *API) SaveEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be YYYY-MM-DD"})
		return
	}

	if req.WeekOff {
		if err := a.Sales.MarkWeekOff(req.Date); err != nil {
			fail(c, err)
			return
		}
		report, _ := a.Sales.Get(req.Date)
		c.JSON(http.StatusOK, gin.H{"message": "Week off recorded", "report": report})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Add at least one item"})
		return
	}

	items := make([]models.SaleItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.SaleItem{
			ID:          uuid.NewString(),
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	if err := a.Sales.SaveEntry(req.Date, items, req.BillImages); err != nil {
		fail(c, err)
		return
	}

	report, _ := a.Sales.Get(req.Date)
	c.JSON(http.StatusOK, gin.H{"message": "Entry saved!", "report": report})
}

// --- DELETE: /api/sales/:date ---
// Whole-record delete. There is no partial-date delete.
func (a *API) DeleteReport(c *gin.Context) {
	if err := a.Sales.Delete(c.Param("date")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report deleted"})
}

// --- PUT: /api/sales/:date/items/:index ---
func (a *API) EditItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	var it EntryItem
	if err := c.ShouldBindJSON(&it); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	date := c.Param("date")
	item := models.SaleItem{
		ID:          uuid.NewString(),
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		Price:       it.Price,
	}
	// Edits keep the item's identity; bad dates/indexes fall through to
	// the repository, which complains loudly.
	if existing, ok := a.Sales.Get(date); ok && index >= 0 && index < len(existing.Items) {
		item.ID = existing.Items[index].ID
	}

	report, err := a.Sales.EditItem(date, index, item)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// --- DELETE: /api/sales/:date/items/:index ---
func (a *API) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	report, deleted, err := a.Sales.RemoveItem(c.Param("date"), index)
	if err != nil {
		fail(c, err)
		return
	}
	if deleted {
		c.JSON(http.StatusOK, gin.H{"message": "Last item removed, report deleted", "deleted": true})
		return
	}
	c.JSON(http.StatusOK, report)
}

// --- DELETE: /api/sales/:date/images/:index ---
func (a *API) RemoveImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	report, err := a.Sales.RemoveImage(c.Param("date"), index)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// --- GET: /api/sales/stats?month=YYYY-MM ---
func (a *API) GetStats(c *gin.Context) {
	month := time.Now()
	if m := c.Query("month"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be YYYY-MM"})
			return
		}
		month = parsed
	}

	profile, _ := a.Users.Get()
	c.JSON(http.StatusOK, reports.ComputeMonthStats(a.Sales.List(), profile.MonthlyTarget, month))
}

// --- GET: /api/sales/:date/report ---
// The WhatsApp-ready text report for one day.
func (a *API) GetTextReport(c *gin.Context) {
	profile, ok := a.Users.Get()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile saved. Please log in."})
		return
	}

	report, ok := a.Sales.Get(c.Param("date"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No report for that date"})
		return
	}

	c.String(http.StatusOK, reports.FormatDaily(profile, report, a.Sales.List()))
}

// --- GET: /api/sales/:date/report.pdf ---
func (a *API) GetPDFReport(c *gin.Context) {
	profile, ok := a.Users.Get()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile saved. Please log in."})
		return
	}

	report, ok := a.Sales.Get(c.Param("date"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No report for that date"})
		return
	}

	pdf, err := export.DailyPDF(profile, report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build PDF"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="report_`+report.Date+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
