package models

import "gorm.io/gorm"

const (
	InquiryStatusNew       = "new"
	InquiryStatusRead      = "read"
	InquiryStatusResponded = "responded"
)

type ContactInquiry struct {
	gorm.Model
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone"`
	Subject  string `gorm:"not null" json:"subject"`
	Message  string `gorm:"not null" json:"message"`
	Status   string `gorm:"not null;default:new" json:"status"`
}
