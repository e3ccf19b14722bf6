package contact

import (
	"net/http"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
)

type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitInquiry saves a contact-form message and emails the sender a
// confirmation.
func SubmitInquiry(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	inquiry := models.ContactInquiry{
		FullName: req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
		Status:   models.InquiryStatusNew,
	}
	if err := utils.PortalDB.Create(&inquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inquiry"})
		return
	}

	go utils.SendContactConfirmation(req.Name, req.Email)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": inquiry})
}

// ListInquiries returns contact inquiries for the admin dashboard.
func ListInquiries(c *gin.Context) {
	query := utils.PortalDB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var inquiries []models.ContactInquiry
	if err := query.Find(&inquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}

// UpdateInquiryStatus marks an inquiry as new, read or responded.
func UpdateInquiryStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	switch input.Status {
	case models.InquiryStatusNew, models.InquiryStatusRead, models.InquiryStatusResponded:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var inquiry models.ContactInquiry
	if err := utils.PortalDB.First(&inquiry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}

	inquiry.Status = input.Status
	if err := utils.PortalDB.Save(&inquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inquiry": inquiry})
}
