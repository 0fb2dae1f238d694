package repository

import (
	"log"

	"inkwave/internal/models"
	"inkwave/internal/slug"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	FindBySlug(slug string) (*models.Comment, error)
	FindByArticle(articleID uint) ([]models.Comment, error)
	FindReplies(parentID uint) ([]models.Comment, error)
	CountByArticle(articleID uint) (int64, error)
	UpdateContent(id uint, content string) error
	Delete(id uint) error
	ExistsBySlug(slug string) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create derives the slug from the first 50 slugified characters of the
// content and resolves collisions with a numeric suffix. The existence
// check and the insert are not wrapped in a transaction; the unique index
// on the slug column backstops a lost race.
func (r *commentRepository) Create(comment *models.Comment) error {
	if comment.Slug == "" {
		derived, err := slug.MakeUnique(slug.CommentBase(comment.Content), r.ExistsBySlug)
		if err != nil {
			return err
		}
		comment.Slug = derived
	}
	if err := r.db.Create(comment).Error; err != nil {
		log.Printf("Error creating comment: %v", err)
		return err
	}
	return nil
}

func (r *commentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Writer").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindBySlug(commentSlug string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Writer").Where("slug = ?", commentSlug).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByArticle returns roots and replies together, newest first. The tree
// shape is reconstructed per root through FindReplies, not stored.
func (r *commentRepository) FindByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Writer").
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) FindReplies(parentID uint) ([]models.Comment, error) {
	var replies []models.Comment
	err := r.db.Preload("Writer").
		Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Find(&replies).Error
	return replies, err
}

func (r *commentRepository) CountByArticle(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

// UpdateContent edits a comment in place. The slug is never recomputed.
func (r *commentRepository) UpdateContent(id uint, content string) error {
	return r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error
}

// Delete removes the comment; replies go with it through the cascading
// foreign key on parent_id.
func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

func (r *commentRepository) ExistsBySlug(commentSlug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("slug = ?", commentSlug).
		Count(&count).Error
	return count > 0, err
}
