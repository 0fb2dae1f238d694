package repository

import (
	"inkwave/internal/models"
	"inkwave/internal/slug"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	FindAll() ([]models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	FindByIDs(ids []uint) ([]models.Category, error)
	ExistsByName(name string) (bool, error)
	SearchByName(query string, limit int) ([]models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create slugs the name once at creation. Name uniqueness already holds, so
// the derived slug is unique without a collision loop.
func (r *categoryRepository) Create(category *models.Category) error {
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindBySlug(categorySlug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", categorySlug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByIDs(ids []uint) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) SearchByName(query string, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("name ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&categories).Error
	return categories, err
}
