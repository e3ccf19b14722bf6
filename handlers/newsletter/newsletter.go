package newsletter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe adds an email to the newsletter list. Re-subscribing an address
// that unsubscribed reactivates it.
func Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	var existing models.Subscriber
	err := utils.PortalDB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		if !existing.IsActive {
			existing.IsActive = true
			if err := utils.PortalDB.Save(&existing).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "data": existing})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Already subscribed"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	subscriber := models.Subscriber{Email: req.Email, IsActive: true}
	if err := utils.PortalDB.Create(&subscriber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": subscriber})
}

// Unsubscribe deactivates a subscription without deleting the row.
func Unsubscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	result := utils.PortalDB.Model(&models.Subscriber{}).
		Where("email = ?", req.Email).
		Update("is_active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListSubscribers returns the newsletter list for the admin dashboard.
func ListSubscribers(c *gin.Context) {
	var subscribers []models.Subscriber
	if err := utils.PortalDB.Order("created_at DESC").Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}

// ExportSubscribers streams the subscriber list as a CSV download.
func ExportSubscribers(c *gin.Context) {
	var subscribers []models.Subscriber
	if err := utils.PortalDB.Order("created_at DESC").Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=subscribers-%d.csv", time.Now().Unix()))

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Email", "Active", "Date"})
	for _, s := range subscribers {
		active := "yes"
		if !s.IsActive {
			active = "no"
		}
		_ = w.Write([]string{s.Email, active, s.CreatedAt.Format("2006-01-02")})
	}
	w.Flush()
}
