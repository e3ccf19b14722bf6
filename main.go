package main

import (
	"log"
	"os"
	"time"

	"engineers-kenya-server/handlers/admin"
	"engineers-kenya-server/handlers/applications"
	"engineers-kenya-server/handlers/contact"
	"engineers-kenya-server/handlers/newsletter"
	"engineers-kenya-server/handlers/payments"
	"engineers-kenya-server/handlers/services"
	"engineers-kenya-server/migrations"
	"engineers-kenya-server/mpesa"
	"engineers-kenya-server/seed"
	"engineers-kenya-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	allowedOrigin := os.Getenv("CORS_ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "https://engineerskenya.co.ke"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	migrations.MigratePayments()
	migrations.MigrateLeads()
	migrations.MigrateServices()

	// Seed Initial Data
	if err := seed.SeedServices(); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}

	// Gateway credentials are loaded once at startup
	payments.Client = mpesa.NewClient(mpesa.LoadConfig())

	// Public routes
	r.GET("/services", services.GetServices)
	r.POST("/applications", applications.SubmitApplication)
	r.POST("/contact", contact.SubmitInquiry)
	r.POST("/newsletter", newsletter.Subscribe)
	r.POST("/newsletter/unsubscribe", newsletter.Unsubscribe)
	r.POST("/payments/initiate", payments.InitiateMpesaPayment)
	r.POST("/mpesa/callback", payments.MpesaCallback)

	r.POST("/admin/login", admin.Login)

	protected := r.Group("/admin")
	protected.Use(admin.AuthMiddleware())
	{
		protected.GET("/stats", admin.GetStats)
		protected.GET("/applications", applications.ListApplications)
		protected.PUT("/applications/:id/status", applications.UpdateApplicationStatus)
		protected.GET("/inquiries", contact.ListInquiries)
		protected.PUT("/inquiries/:id/status", contact.UpdateInquiryStatus)
		protected.GET("/subscribers", newsletter.ListSubscribers)
		protected.GET("/payments", payments.ListPayments)
		protected.GET("/payments/:checkout_request_id/status", payments.QueryPaymentStatus)
		protected.GET("/export/applications", applications.ExportApplications)
		protected.GET("/export/subscribers", newsletter.ExportSubscribers)
		protected.GET("/export/payments", payments.ExportPayments)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
