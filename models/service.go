package models

import "time"

// Service is one entry in the public services catalog shown on the
// marketing site and in the payment form's service selector.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
