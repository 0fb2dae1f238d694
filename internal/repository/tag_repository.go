package repository

import (
	"strings"

	"inkwave/internal/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	FindOrCreate(names []string) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindOrCreate resolves a free-form tag list, creating missing tags on the
// fly. Blank entries are dropped.
func (r *tagRepository) FindOrCreate(names []string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := r.db.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
