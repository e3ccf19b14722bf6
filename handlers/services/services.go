package services

import (
	"net/http"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
)

// GetServices returns the seeded services catalog backing the marketing
// site's services section and the payment form's service selector.
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := utils.PortalDB.Order("id").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}
