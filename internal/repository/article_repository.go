package repository

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"inkwave/internal/models"
	"inkwave/internal/slug"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	articleCacheKeyPrefix = "article:"
	allArticlesCacheKey   = "articles:all"
	cacheExpiration       = 30 * time.Minute
)

type ArticleRepository interface {
	Create(article *models.Article) error
	FindAll() ([]models.Article, error)
	FindBySlug(slug string) (*models.Article, error)
	FindByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error

	ExistsByTitle(title string, excludeID uint) (bool, error)
	ExistsBySlug(slug string) (bool, error)

	IncrementViews(id uint) error
	AddLike(articleID, userID uint) error
	RemoveLike(articleID, userID uint) error
	IsLikedBy(articleID, userID uint) (bool, error)
	LikeCount(articleID uint) (int64, error)

	FindByCategory(categoryID uint, page, perPage int) ([]models.Article, int64, error)
	FindByWriter(writerID uint, page, perPage int) ([]models.Article, int64, error)
	FindRelated(writerID, excludeID uint, limit int) ([]models.Article, error)
	FindTrending(limit int) ([]models.Article, error)
	FindLatest(limit int) ([]models.Article, error)
	Search(query string, limit int) ([]models.Article, error)
	FeaturedWriters(limit int) ([]models.FeaturedWriter, error)

	ReplaceCategories(article *models.Article, categories []models.Category) error
	ReplaceTags(article *models.Article, tags []models.Tag) error
}

type articleRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func getArticleCacheKey(slug string) string {
	return articleCacheKeyPrefix + slug
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db, redis: nil, ctx: context.Background()}
}

func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{db: db, redis: redisClient, ctx: context.Background()}
}

// Create derives the slug from the title. A title that normalizes to the
// slug of another article is already rejected by the title uniqueness check
// at the boundary, so no collision loop is needed here.
func (r *articleRepository) Create(article *models.Article) error {
	if article.Slug == "" {
		article.Slug = slug.Make(article.Title)
	}
	if err := r.db.Create(article).Error; err != nil {
		log.Printf("Error creating article: %v", err)
		return err
	}
	r.invalidateAll()
	return nil
}

func (r *articleRepository) FindAll() ([]models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, allArticlesCacheKey).Result()
		if err == nil {
			var articles []models.Article
			if err := json.Unmarshal([]byte(cachedData), &articles); err == nil {
				return articles, nil
			}
		}
	}

	var articles []models.Article
	err := r.db.Preload("Writer").Preload("Categories").Preload("Tags").
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		if articlesJSON, err := json.Marshal(articles); err == nil {
			if err := r.redis.Set(r.ctx, allArticlesCacheKey, articlesJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache all articles: %v", err)
			}
		}
	}

	return articles, nil
}

func (r *articleRepository) FindBySlug(articleSlug string) (*models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, getArticleCacheKey(articleSlug)).Result()
		if err == nil {
			var article models.Article
			if err := json.Unmarshal([]byte(cachedData), &article); err == nil {
				return &article, nil
			}
		}
	}

	var article models.Article
	err := r.db.Preload("Writer").Preload("Categories").Preload("Tags").
		Where("slug = ?", articleSlug).
		First(&article).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		if articleJSON, err := json.Marshal(article); err == nil {
			if err := r.redis.Set(r.ctx, getArticleCacheKey(articleSlug), articleJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache article %s: %v", articleSlug, err)
			}
		}
	}

	return &article, nil
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Writer").Preload("Categories").Preload("Tags").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update persists changed columns. The slug column is deliberately left
// alone: it is fixed at creation and survives title edits.
func (r *articleRepository) Update(article *models.Article) error {
	err := r.db.Model(article).
		Select("title", "content", "image", "updated_at").
		Updates(map[string]interface{}{
			"title":   article.Title,
			"content": article.Content,
			"image":   article.Image,
		}).Error
	if err != nil {
		return err
	}
	r.invalidate(article.Slug)
	r.invalidateAll()
	return nil
}

func (r *articleRepository) Delete(id uint) error {
	article, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.Article{}, id).Error; err != nil {
		return err
	}
	r.invalidate(article.Slug)
	r.invalidateAll()
	return nil
}

func (r *articleRepository) ExistsByTitle(title string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Article{}).Where("LOWER(title) = LOWER(?)", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) ExistsBySlug(articleSlug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", articleSlug).Count(&count).Error
	return count > 0, err
}

// IncrementViews bumps the counter inside the database so two concurrent
// readers cannot lose an update.
func (r *articleRepository) IncrementViews(id uint) error {
	err := r.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return err
	}
	if r.redis != nil {
		var slugs []string
		if err := r.db.Model(&models.Article{}).Where("id = ?", id).
			Pluck("slug", &slugs).Error; err == nil && len(slugs) > 0 {
			r.invalidate(slugs[0])
		}
	}
	return nil
}

func (r *articleRepository) AddLike(articleID, userID uint) error {
	return r.db.Model(&models.Article{ID: articleID}).
		Association("LikedBy").
		Append(&models.User{ID: userID})
}

func (r *articleRepository) RemoveLike(articleID, userID uint) error {
	return r.db.Model(&models.Article{ID: articleID}).
		Association("LikedBy").
		Delete(&models.User{ID: userID})
}

func (r *articleRepository) IsLikedBy(articleID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("article_likes").
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}

// LikeCount is computed from the join table on every read, never
// denormalized onto the article row.
func (r *articleRepository) LikeCount(articleID uint) (int64, error) {
	var count int64
	err := r.db.Table("article_likes").
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) FindByCategory(categoryID uint, page, perPage int) ([]models.Article, int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).
		Joins("JOIN article_categories ac ON ac.article_id = articles.id").
		Where("ac.category_id = ?", categoryID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err = r.db.Model(&models.Article{}).
		Joins("JOIN article_categories ac ON ac.article_id = articles.id").
		Where("ac.category_id = ?", categoryID).
		Preload("Writer").Preload("Categories").Preload("Tags").
		Order("articles.created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) FindByWriter(writerID uint, page, perPage int) ([]models.Article, int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Where("writer_id = ?", writerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err = r.db.Where("writer_id = ?", writerID).
		Preload("Categories").Preload("Tags").
		Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) FindRelated(writerID, excludeID uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("writer_id = ? AND id <> ?", writerID, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindTrending(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Writer").Preload("Categories").
		Order("views DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindLatest(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Writer").Preload("Categories").
		Order("created_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// Search matches a case-insensitive substring against the title, any
// category name, the writer's username or any tag name.
func (r *articleRepository) Search(query string, limit int) ([]models.Article, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	var articles []models.Article
	err := r.db.Model(&models.Article{}).
		Distinct("articles.*").
		Joins("JOIN users writers ON writers.id = articles.writer_id").
		Joins("LEFT JOIN article_categories ac ON ac.article_id = articles.id").
		Joins("LEFT JOIN categories cats ON cats.id = ac.category_id").
		Joins("LEFT JOIN article_tags atg ON atg.article_id = articles.id").
		Joins("LEFT JOIN tags tg ON tg.id = atg.tag_id").
		Where("articles.title ILIKE ? OR cats.name ILIKE ? OR writers.username ILIKE ? OR tg.name ILIKE ?",
			pattern, pattern, pattern, pattern).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FeaturedWriters(limit int) ([]models.FeaturedWriter, error) {
	var writers []models.FeaturedWriter
	err := r.db.Table("users").
		Select("users.id, users.username, users.profile_picture, SUM(articles.views) AS total_views").
		Joins("JOIN articles ON articles.writer_id = users.id").
		Group("users.id").
		Order("total_views DESC").
		Limit(limit).
		Scan(&writers).Error
	return writers, err
}

func (r *articleRepository) ReplaceCategories(article *models.Article, categories []models.Category) error {
	if err := r.db.Model(article).Association("Categories").Replace(categories); err != nil {
		return err
	}
	r.invalidate(article.Slug)
	r.invalidateAll()
	return nil
}

func (r *articleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	if err := r.db.Model(article).Association("Tags").Replace(tags); err != nil {
		return err
	}
	r.invalidate(article.Slug)
	r.invalidateAll()
	return nil
}

func (r *articleRepository) invalidate(articleSlug string) {
	if r.redis == nil || articleSlug == "" {
		return
	}
	if err := r.redis.Del(r.ctx, getArticleCacheKey(articleSlug)).Err(); err != nil {
		log.Printf("Failed to invalidate article cache %s: %v", articleSlug, err)
	}
}

func (r *articleRepository) invalidateAll() {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(r.ctx, allArticlesCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate article list cache: %v", err)
	}
}
