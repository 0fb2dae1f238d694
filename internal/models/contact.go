package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	Name      string    `gorm:"size:99" json:"name" example:"Jane Doe"`
	Email     string    `gorm:"size:99" json:"email" example:"jane@example.com"`
	Subject   string    `gorm:"size:99" json:"subject" example:"Feedback"`
	Message   string    `gorm:"size:499" json:"message"`
}
