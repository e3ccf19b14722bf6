package models

import (
	"time"

	"gorm.io/gorm"
)

// CallbackLog records every STK callback Safaricom delivers, whether or not
// a payment row matched it at the time. Unmatched entries are replayed when
// the initiation handler writes a pending row for the same checkout request,
// which covers callbacks that race ahead of the database insert.
type CallbackLog struct {
	gorm.Model
	CheckoutRequestID  string     `gorm:"index;not null" json:"checkout_request_id"`
	ResultCode         int        `json:"result_code"`
	ResultDesc         string     `json:"result_desc"`
	Amount             float64    `json:"amount"`
	MpesaReceiptNumber string     `json:"mpesa_receipt_number"`
	PhoneNumber        string     `json:"phone_number"`
	TransactionDate    *time.Time `json:"transaction_date"`
	Matched            bool       `gorm:"not null;default:false" json:"matched"`
}
