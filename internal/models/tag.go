package models

// Tag is free-form: tags are created on demand from comma-separated input.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"uniqueIndex;size:99" json:"name" example:"golang"`
}
