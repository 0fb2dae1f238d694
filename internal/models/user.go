package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Username       string    `gorm:"uniqueIndex;size:99" json:"username" example:"janedoe"`
	Email          string    `gorm:"uniqueIndex;size:99" json:"email" example:"jane@example.com"`
	Password       string    `json:"-"`
	Bio            string    `gorm:"type:text" json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	Verified       bool      `gorm:"default:false" json:"verified"`
}
