package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// WatiMessage represents the structure of a message to send via Wati API
type WatiMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendPaymentWhatsApp notifies the payer on WhatsApp that their M-Pesa
// payment was received. Failures are logged only.
func SendPaymentWhatsApp(phoneNumber string, amount float64, receipt string) {
	if os.Getenv("WATI_URL") == "" {
		log.Printf("Wati not configured, skipping WhatsApp notification to %s", phoneNumber)
		return
	}

	message := WatiMessage{
		Phone:   phoneNumber,
		Message: fmt.Sprintf("We have received your payment of KES %.0f. M-Pesa receipt: %s. Thank you for choosing Kenyan Engineers.", amount, receipt),
	}

	messageJSON, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal WhatsApp message: %v", err)
		return
	}

	req, err := http.NewRequest("POST", os.Getenv("WATI_URL")+"/api/v1/sendSessionMessage", bytes.NewBuffer(messageJSON))
	if err != nil {
		log.Printf("Failed to create Wati API request: %v", err)
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("WATI_API_KEY"))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Failed to send WhatsApp notification: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Failed to send WhatsApp notification: received status code %d", resp.StatusCode)
	}
}
