package handlers

import (
	"errors"
	"net/http"

	"go-sales-diary/internal/ai"
	"go-sales-diary/internal/database"
	"go-sales-diary/internal/reports"
	"go-sales-diary/internal/store"

	"github.com/gin-gonic/gin"
)

// API bundles the repositories and the coach for the gin handlers.
// Everything is injected so tests can run against the in-memory store.
type API struct {
	Users      *database.Users
	Sales      *database.Sales
	Complaints *database.Complaints
	Settings   *database.Settings
	Coach      *ai.Coach
}

func New(s store.Store, coach *ai.Coach) *API {
	return &API{
		Users:      database.NewUsers(s),
		Sales:      database.NewSales(s),
		Complaints: database.NewComplaints(s),
		Settings:   database.NewSettings(s),
		Coach:      coach,
	}
}

// fail translates repository errors into the right HTTP response.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrQuotaExceeded):
		// The one error the user must see: nothing was saved.
		c.JSON(http.StatusInsufficientStorage, gin.H{
			"error": "Storage full! Please clear some data or old images.",
		})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, reports.ErrIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong saving your data"})
	}
}
