package admin

import (
	"net/http"
	"os"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the shared admin credentials and issues a session token.
// The password is compared against a bcrypt hash held in the environment;
// there are no admin accounts in the database.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || passwordHash == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin login is not configured"})
		return
	}

	if input.Email != adminEmail ||
		bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"email": input.Email,
			"name":  "Admin",
			"role":  "admin",
		},
	})
}

// AuthMiddleware guards the admin routes with the session token issued by
// Login.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		email, err := utils.ExtractAdminFromHeader(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("admin_email", email)
		c.Next()
	}
}

// GetStats aggregates the dashboard counters: lead volumes plus revenue
// from successful payments.
func GetStats(c *gin.Context) {
	var totalApplications, pendingApplications, totalInquiries, totalSubscribers, totalPayments int64
	var revenueTotal float64

	db := utils.PortalDB
	if err := db.Model(&models.Application{}).Count(&totalApplications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}
	db.Model(&models.Application{}).Where("status = ?", models.ApplicationStatusPending).Count(&pendingApplications)
	db.Model(&models.ContactInquiry{}).Count(&totalInquiries)
	db.Model(&models.Subscriber{}).Count(&totalSubscribers)
	db.Model(&models.Payment{}).Count(&totalPayments)
	db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueTotal)

	c.JSON(http.StatusOK, gin.H{
		"totalApplications":   totalApplications,
		"pendingApplications": pendingApplications,
		"totalInquiries":      totalInquiries,
		"totalSubscribers":    totalSubscribers,
		"totalPayments":       totalPayments,
		"revenueTotal":        revenueTotal,
	})
}
