package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses. A payment is created as Pending and moves exactly once
// to Success or Failed when the M-Pesa callback arrives.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	gorm.Model
	CheckoutRequestID      string     `gorm:"unique;not null" json:"checkout_request_id"`
	MerchantRequestID      string     `json:"merchant_request_id"`
	PhoneNumber            string     `gorm:"not null" json:"phone_number"`
	Amount                 float64    `gorm:"not null" json:"amount"`
	ServiceType            string     `json:"service_type"`
	Description            string     `json:"description"`
	Status                 string     `gorm:"not null" json:"status"`
	MpesaReceiptNumber     string     `json:"mpesa_receipt_number"`
	ResultCode             string     `json:"result_code"`
	ResultDesc             string     `json:"result_desc"`
	TransactionCompletedAt *time.Time `json:"transaction_completed_at"`
}
