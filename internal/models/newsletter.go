package models

import "time"

type NewsletterSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Email     string    `gorm:"uniqueIndex;size:99" json:"email" example:"reader@example.com"`
	CreatedAt time.Time `json:"subscribed_at" example:"2023-01-01T00:00:00Z"`
}
