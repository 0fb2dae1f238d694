package models

import "time"

// Comment is self-referential: a nil ParentID marks a root comment, a
// non-nil one marks a reply. Deleting an article or a parent comment
// cascades through the foreign keys, so replies never outlive their root.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Slug      string    `gorm:"uniqueIndex;size:120" json:"slug" example:"great-post"`
	Content   string    `gorm:"type:text" json:"content"`
	WriterID  uint      `gorm:"index" json:"writer_id"`
	Writer    User      `gorm:"foreignKey:WriterID;constraint:OnDelete:CASCADE" json:"writer,omitempty"`
	ArticleID uint      `gorm:"index" json:"article_id"`
	Article   Article   `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	Parent    *Comment  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Replies   []Comment `gorm:"-" json:"replies,omitempty"`
}

// IsRoot reports whether the comment sits at the top level of its article.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}
