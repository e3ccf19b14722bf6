package payments

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"engineers-kenya-server/models"
	"engineers-kenya-server/mpesa"
	"engineers-kenya-server/utils"

	"github.com/gin-gonic/gin"
)

// Client is the shared Daraja gateway client, wired up in main.
var Client *mpesa.Client

type InitiatePaymentRequest struct {
	PhoneNumber string  `json:"phone_number"`
	Amount      float64 `json:"amount"`
	ServiceType string  `json:"service_type"`
	Description string  `json:"description"`
}

// InitiateMpesaPayment triggers an STK push on the payer's phone and records
// a pending payment keyed by the gateway's CheckoutRequestID. The final
// outcome arrives later through MpesaCallback.
func InitiateMpesaPayment(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.PhoneNumber == "" || req.Amount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number and amount are required"})
		return
	}

	if req.ServiceType == "" {
		req.ServiceType = "service"
	}
	if req.Description == "" {
		req.Description = "Engineering Services"
	}

	accessToken, err := Client.AccessToken()
	if err != nil {
		log.Printf("Failed to get M-Pesa access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate with M-Pesa"})
		return
	}

	result, err := Client.STKPush(accessToken, mpesa.STKPushRequest{
		PhoneNumber: req.PhoneNumber,
		Amount:      req.Amount,
		ServiceType: req.ServiceType,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := models.Payment{
		CheckoutRequestID: result.CheckoutRequestID,
		MerchantRequestID: result.MerchantRequestID,
		PhoneNumber:       mpesa.NormalizePhone(req.PhoneNumber),
		Amount:            req.Amount,
		ServiceType:       req.ServiceType,
		Description:       req.Description,
		Status:            models.PaymentStatusPending,
	}
	if err := utils.PortalDB.Create(&payment).Error; err != nil {
		// The payer's phone is already prompting at this point, so the
		// request still reports success; the missing row is logged instead.
		log.Printf("Failed to record payment %s: %v", result.CheckoutRequestID, err)
	} else {
		applyQueuedCallback(payment.CheckoutRequestID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"checkout_request_id":  result.CheckoutRequestID,
		"merchant_request_id":  result.MerchantRequestID,
		"response_code":        result.ResponseCode,
		"response_description": result.ResponseDescription,
	})
}

// MpesaCallback receives the asynchronous STK result from Safaricom. The
// gateway retries on anything but an acknowledgment, so internal failures
// are logged and acknowledged rather than surfaced.
func MpesaCallback(c *gin.Context) {
	var envelope mpesa.CallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ResultCode": 1, "ResultDesc": "Error"})
		return
	}

	callback := envelope.Body.StkCallback
	if callback == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback format"})
		return
	}

	matched := completePayment(callback.CheckoutRequestID, callback.ResultCode, callback.ResultDesc, callback.ReceiptNumber(), callback.CompletedAt())
	if !matched {
		log.Printf("No pending payment matched callback %s (result %d)", callback.CheckoutRequestID, callback.ResultCode)
	}

	entry := models.CallbackLog{
		CheckoutRequestID:  callback.CheckoutRequestID,
		ResultCode:         callback.ResultCode,
		ResultDesc:         callback.ResultDesc,
		Amount:             callback.Amount(),
		MpesaReceiptNumber: callback.ReceiptNumber(),
		PhoneNumber:        callback.PayerPhone(),
		TransactionDate:    callback.CompletedAt(),
		Matched:            matched,
	}
	if err := utils.PortalDB.Create(&entry).Error; err != nil {
		log.Printf("Failed to record callback for %s: %v", callback.CheckoutRequestID, err)
	}

	c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}

// completePayment moves the pending payment matching checkoutRequestID to
// its terminal state. The status guard makes duplicate callbacks a no-op.
// Returns false when no pending row matched.
func completePayment(checkoutRequestID string, resultCode int, resultDesc, receipt string, completedAt *time.Time) bool {
	status := models.PaymentStatusFailed
	if resultCode == 0 {
		status = models.PaymentStatusSuccess
	}

	if completedAt == nil {
		now := time.Now()
		completedAt = &now
	}

	updates := map[string]interface{}{
		"status":                   status,
		"result_code":              strconv.Itoa(resultCode),
		"result_desc":              resultDesc,
		"transaction_completed_at": completedAt,
	}
	if receipt != "" {
		updates["mpesa_receipt_number"] = receipt
	}

	result := utils.PortalDB.Model(&models.Payment{}).
		Where("checkout_request_id = ? AND status = ?", checkoutRequestID, models.PaymentStatusPending).
		Updates(updates)
	if result.Error != nil {
		log.Printf("Failed to update payment %s: %v", checkoutRequestID, result.Error)
		return false
	}
	if result.RowsAffected == 0 {
		return false
	}

	if status == models.PaymentStatusSuccess {
		var payment models.Payment
		if err := utils.PortalDB.Where("checkout_request_id = ?", checkoutRequestID).First(&payment).Error; err == nil {
			go utils.SendPaymentWhatsApp(payment.PhoneNumber, payment.Amount, payment.MpesaReceiptNumber)
		}
	}

	return true
}

// applyQueuedCallback replays a callback that arrived before the initiation
// handler managed to write the pending row.
func applyQueuedCallback(checkoutRequestID string) {
	var entry models.CallbackLog
	err := utils.PortalDB.
		Where("checkout_request_id = ? AND matched = ?", checkoutRequestID, false).
		Order("id DESC").
		First(&entry).Error
	if err != nil {
		return
	}

	if completePayment(entry.CheckoutRequestID, entry.ResultCode, entry.ResultDesc, entry.MpesaReceiptNumber, entry.TransactionDate) {
		if err := utils.PortalDB.Model(&entry).Update("matched", true).Error; err != nil {
			log.Printf("Failed to mark callback %d as matched: %v", entry.ID, err)
		}
	}
}
