package models

import "gorm.io/gorm"

// Application statuses set from the admin dashboard.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

type Application struct {
	gorm.Model
	FullName           string `gorm:"not null" json:"full_name"`
	Email              string `gorm:"not null" json:"email"`
	Phone              string `gorm:"not null" json:"phone"`
	CompanyName        string `json:"company_name"`
	ServiceType        string `gorm:"not null" json:"service_type"`
	ProjectDescription string `json:"project_description"`
	Budget             string `json:"budget"`
	Timeline           string `json:"timeline"`
	Requirements       string `json:"requirements"`
	Status             string `gorm:"not null;default:pending" json:"status"`
}
