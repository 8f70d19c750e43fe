package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- GET: /api/quote ---
// The dashboard's motivational line. Passing the request context means
// an abandoned page load cancels the upstream call instead of letting
// a stale quote land later.
func (a *API) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": a.Coach.Quote(c.Request.Context())})
}

// --- POST: /api/ask ---
func (a *API) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	// The coach works without a profile too, it just gets less context.
	profile, _ := a.Users.Get()

	reply := a.Coach.Ask(c.Request.Context(), profile, a.Sales.List(), req.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
