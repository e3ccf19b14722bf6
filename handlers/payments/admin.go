package payments

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
)

// ListPayments returns payments for the admin dashboard, newest first,
// optionally filtered by status.
func ListPayments(c *gin.Context) {
	query := utils.PortalDB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// ExportPayments streams the payment table as a CSV download.
func ExportPayments(c *gin.Context) {
	var payments []models.Payment
	if err := utils.PortalDB.Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments-%d.csv", time.Now().Unix()))

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Phone", "Amount", "Service", "Status", "Receipt", "Date"})
	for _, p := range payments {
		receipt := p.MpesaReceiptNumber
		if receipt == "" {
			receipt = "N/A"
		}
		_ = w.Write([]string{
			p.PhoneNumber,
			fmt.Sprintf("%.2f", p.Amount),
			p.ServiceType,
			p.Status,
			receipt,
			p.CreatedAt.Format("2006-01-02"),
		})
	}
	w.Flush()
}

// QueryPaymentStatus asks Daraja directly for the state of a push request.
// Manual escape hatch for payments stuck in pending; the callback remains
// the normal reconciliation path.
func QueryPaymentStatus(c *gin.Context) {
	checkoutRequestID := c.Param("checkout_request_id")

	accessToken, err := Client.AccessToken()
	if err != nil {
		log.Printf("Failed to get M-Pesa access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate with M-Pesa"})
		return
	}

	status, err := Client.QueryStatus(accessToken, checkoutRequestID)
	if err != nil {
		log.Printf("Status query for %s failed: %v", checkoutRequestID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to query payment status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
