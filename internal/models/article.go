package models

import "time"

// Article is the central published entity. Slug is derived from the title
// once at creation and never regenerated, even when the title is edited.
type Article struct {
	ID         uint       `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Slug       string     `gorm:"uniqueIndex;size:120" json:"slug" example:"hello-world"`
	Title      string     `gorm:"uniqueIndex;size:99" json:"title" example:"Hello World"`
	Content    string     `gorm:"type:text" json:"content"`
	Image      string     `json:"image"`
	Views      int64      `gorm:"default:0" json:"views" example:"42"`
	WriterID   uint       `gorm:"index" json:"writer_id"`
	Writer     User       `gorm:"foreignKey:WriterID;constraint:OnDelete:CASCADE" json:"writer,omitempty"`
	Categories []Category `gorm:"many2many:article_categories" json:"categories,omitempty"`
	Tags       []Tag      `gorm:"many2many:article_tags" json:"tags,omitempty"`
	LikedBy    []User     `gorm:"many2many:article_likes" json:"-"`
}
