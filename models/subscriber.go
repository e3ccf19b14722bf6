package models

import "gorm.io/gorm"

type Subscriber struct {
	gorm.Model
	Email    string `gorm:"unique;not null" json:"email"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}
