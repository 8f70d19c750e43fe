package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// --- GET: /api/theme ---
func (a *API) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": a.Settings.Theme()})
}

// --- PUT: /api/theme ---
func (a *API) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := a.Settings.SetTheme(req.Theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Theme must be light or dark"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
