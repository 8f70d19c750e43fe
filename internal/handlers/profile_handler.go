package handlers

import (
	"net/http"

	"go-sales-diary/internal/auth"
	"go-sales-diary/internal/models"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Name          string  `json:"name" binding:"required"`
	EmployeeID    string  `json:"employeeId" binding:"required"`
	PhoneNumber   string  `json:"phoneNumber"`
	Email         string  `json:"email"`
	StoreName     string  `json:"storeName" binding:"required"`
	MonthlyTarget float64 `json:"monthlyTarget" binding:"gte=0"`
	Avatar        string  `json:"avatar"`
}

// --- POST: /login ---
// There is one profile per device. Logging in saves it (overwriting
// whoever was there before) and hands back a session token.
func (a *API) Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	profile := models.UserProfile{
		Name:          input.Name,
		EmployeeID:    input.EmployeeID,
		PhoneNumber:   input.PhoneNumber,
		Email:         input.Email,
		StoreName:     input.StoreName,
		MonthlyTarget: input.MonthlyTarget,
		Avatar:        input.Avatar,
	}

	if err := a.Users.Save(profile); err != nil {
		fail(c, err)
		return
	}

	token, err := auth.GenerateToken(profile.EmployeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"profile": profile,
	})
}

// --- GET: /api/profile ---
func (a *API) GetProfile(c *gin.Context) {
	profile, ok := a.Users.Get()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile saved. Please log in."})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// --- PUT: /api/profile ---
// Settings edits send the whole profile back; the write is a full
// replace, same as login.
func (a *API) UpdateProfile(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	profile := models.UserProfile{
		Name:          input.Name,
		EmployeeID:    input.EmployeeID,
		PhoneNumber:   input.PhoneNumber,
		Email:         input.Email,
		StoreName:     input.StoreName,
		MonthlyTarget: input.MonthlyTarget,
		Avatar:        input.Avatar,
	}

	if err := a.Users.Save(profile); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// --- POST: /api/logout ---
// Deletes the profile. Sales and complaints stay on the device.
func (a *API) Logout(c *gin.Context) {
	if err := a.Users.Clear(); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
