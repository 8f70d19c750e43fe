package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"go-sales-diary/internal/ai"
	"go-sales-diary/internal/handlers"
	"go-sales-diary/internal/middleware"
	"go-sales-diary/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	// Local store: one sqlite file, same blobs the app always kept.
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./sales_diary.db"
	}
	var quota int64
	if q := os.Getenv("STORE_QUOTA_BYTES"); q != "" {
		parsed, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			log.Fatal("❌ STORE_QUOTA_BYTES must be a number:", err)
		}
		quota = parsed
	}

	kv, err := store.OpenSQLite(dbPath, quota)
	if err != nil {
		log.Fatal("❌ Failed to open local store:", err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set - coach runs in offline mode")
	}

	api := handlers.New(kv, ai.NewCoach(apiKey))

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"}, // the Vite dev frontend
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", api.Login)

	// --- PROTECTED ROUTES ---
	protected := r.Group("/api")
	protected.Use(middleware.RequireSession())
	{
		protected.GET("/profile", api.GetProfile)
		protected.PUT("/profile", api.UpdateProfile)
		protected.POST("/logout", api.Logout)

		protected.GET("/sales", api.ListSales)
		protected.POST("/sales", api.SaveEntry)
		protected.GET("/sales/stats", api.GetStats)
		protected.DELETE("/sales/:date", api.DeleteReport)
		protected.PUT("/sales/:date/items/:index", api.EditItem)
		protected.DELETE("/sales/:date/items/:index", api.RemoveItem)
		protected.DELETE("/sales/:date/images/:index", api.RemoveImage)
		protected.GET("/sales/:date/report", api.GetTextReport)
		protected.GET("/sales/:date/report.pdf", api.GetPDFReport)

		protected.GET("/complaints", api.ListComplaints)
		protected.POST("/complaints", api.AddComplaint)
		protected.PUT("/complaints/:id/toggle", api.ToggleComplaint)

		protected.GET("/theme", api.GetTheme)
		protected.PUT("/theme", api.SetTheme)

		protected.GET("/export/csv", api.ExportCSV)
		protected.GET("/export/backup", api.ExportBackup)

		protected.GET("/quote", api.GetQuote)
		protected.POST("/ask", api.Ask)
	}

	// --- DEPLOYMENT: Serve the built frontend ---
	r.Static("/assets", "./web/assets")
	r.NoRoute(func(c *gin.Context) {
		c.File("./web/index.html")
	})

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	log.Println("🚀 Server starting on " + baseURL)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
