package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"uniqueIndex;size:99" json:"name" example:"Technology"`
	Slug string `gorm:"uniqueIndex;size:120" json:"slug" example:"technology"`
}
