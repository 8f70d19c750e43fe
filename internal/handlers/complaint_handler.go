package handlers

import (
	"net/http"
	"time"

	"go-sales-diary/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ComplaintRequest struct {
	CustomerName string           `json:"customerName" binding:"required"`
	PhoneNumber  string           `json:"phoneNumber" binding:"required"`
	ProductModel string           `json:"productModel"`
	IssueType    models.IssueType `json:"issueType" binding:"required"`
}

// --- GET: /api/complaints ---
func (a *API) ListComplaints(c *gin.Context) {
	list := a.Complaints.List()
	if list == nil {
		list = []models.Complaint{}
	}
	c.JSON(http.StatusOK, list)
}

// --- POST: /api/complaints ---
func (a *API) AddComplaint(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	complaint := models.Complaint{
		ID:           uuid.NewString(),
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		ProductModel: req.ProductModel,
		IssueType:    req.IssueType,
		IsResolved:   false,
		Date:         time.Now().Format(time.RFC3339),
	}

	if err := a.Complaints.Add(complaint); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

// --- PUT: /api/complaints/:id/toggle ---
// Resolve an open ticket, or reopen a resolved one. Nothing else on a
// ticket ever changes, and tickets are never deleted.
func (a *API) ToggleComplaint(c *gin.Context) {
	complaint, err := a.Complaints.Toggle(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}
