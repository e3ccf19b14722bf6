package applications

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
)

// SubmitApplication saves a service application from the marketing site and
// emails the applicant a confirmation.
func SubmitApplication(c *gin.Context) {
	var application models.Application
	if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if application.FullName == "" || application.Email == "" || application.Phone == "" || application.ServiceType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	application.Status = models.ApplicationStatusPending
	if err := utils.PortalDB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application"})
		return
	}

	go utils.SendApplicationConfirmation(application.FullName, application.Email)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": application})
}

// ListApplications returns applications for the admin dashboard, optionally
// filtered by status.
func ListApplications(c *gin.Context) {
	query := utils.PortalDB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// UpdateApplicationStatus moves an application between pending, approved
// and rejected.
func UpdateApplicationStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	switch input.Status {
	case models.ApplicationStatusPending, models.ApplicationStatusApproved, models.ApplicationStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var application models.Application
	if err := utils.PortalDB.First(&application, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	application.Status = input.Status
	if err := utils.PortalDB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

// ExportApplications streams all applications as a CSV download.
func ExportApplications(c *gin.Context) {
	var applications []models.Application
	if err := utils.PortalDB.Order("created_at DESC").Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=applications-%d.csv", time.Now().Unix()))

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Name", "Email", "Phone", "Company", "Service", "Status", "Date"})
	for _, a := range applications {
		_ = w.Write([]string{
			a.FullName,
			a.Email,
			a.Phone,
			a.CompanyName,
			a.ServiceType,
			a.Status,
			a.CreatedAt.Format("2006-01-02"),
		})
	}
	w.Flush()
}
