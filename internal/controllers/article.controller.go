package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"inkwave/internal/models"
	"inkwave/internal/repository"
	"inkwave/internal/session"
	"inkwave/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	sessionCookieName = "inkwave_session"
	homeSectionSize   = 3
	relatedLimit      = 3
	categoryPageSize  = 6
)

type ArticleController struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	commentRepo  repository.CommentRepository
	views        session.ViewTracker
}

func NewArticleController(
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	commentRepo repository.CommentRepository,
	views session.ViewTracker,
) *ArticleController {
	return &ArticleController{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		commentRepo:  commentRepo,
		views:        views,
	}
}

// sessionID returns the visitor's session cookie, minting one on first
// contact. The id only scopes view-dedup markers.
func (ac *ArticleController) sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookieName); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(sessionCookieName, sid, int(session.Lifetime.Seconds()), "/", "", false, true)
	return sid
}

// Home godoc
// @Summary Home page data
// @Description Trending, latest and all articles plus categories and featured writers
// @Tags article
// @Produce json
// @Success 200 {object} map[string]interface{} "Home data retrieved"
// @Router / [get]
func (ac *ArticleController) Home(c *gin.Context) {
	fail := func(err error) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve home data",
			"error":   err.Error(),
		})
	}

	trending, err := ac.articleRepo.FindTrending(homeSectionSize)
	if err != nil {
		fail(err)
		return
	}
	latest, err := ac.articleRepo.FindLatest(homeSectionSize)
	if err != nil {
		fail(err)
		return
	}
	all, err := ac.articleRepo.FindAll()
	if err != nil {
		fail(err)
		return
	}
	categories, err := ac.categoryRepo.FindAll()
	if err != nil {
		fail(err)
		return
	}
	writers, err := ac.articleRepo.FeaturedWriters(homeSectionSize)
	if err != nil {
		fail(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Home data retrieved successfully",
		"data": gin.H{
			"trending_posts":   trending,
			"latest_posts":     latest,
			"all_posts":        all,
			"categories":       categories,
			"featured_authors": writers,
		},
	})
}

// GetArticleDetail godoc
// @Summary Article detail
// @Description Article with comments, like state, reading time and related posts; records a deduplicated view
// @Tags article
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{} "Article retrieved"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/detail/{slug} [get]
func (ac *ArticleController) GetArticleDetail(c *gin.Context) {
	article, err := ac.articleRepo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided slug",
		})
		return
	}

	sid := ac.sessionID(c)
	if !ac.views.Seen(sid, article.ID) {
		if err := ac.articleRepo.IncrementViews(article.ID); err == nil {
			ac.views.MarkSeen(sid, article.ID)
			article.Views++
		}
	}

	comments, err := ac.commentRepo.FindByArticle(article.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve comments",
			"error":   err.Error(),
		})
		return
	}
	for i := range comments {
		if comments[i].IsRoot() {
			replies, err := ac.commentRepo.FindReplies(comments[i].ID)
			if err == nil {
				comments[i].Replies = replies
			}
		}
	}

	likeCount, err := ac.articleRepo.LikeCount(article.ID)
	if err != nil {
		likeCount = 0
	}

	liked := false
	if userID := c.GetUint("user_id"); userID != 0 {
		liked, _ = ac.articleRepo.IsLikedBy(article.ID, userID)
	}

	related, err := ac.articleRepo.FindRelated(article.WriterID, article.ID, relatedLimit)
	if err != nil {
		related = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data": gin.H{
			"article":         article,
			"minutes_read":    utils.ReadingMinutes(article.Content),
			"number_of_likes": likeCount,
			"liked":           liked,
			"comments":        comments,
			"total_comments":  int64(len(comments)),
			"related_posts":   related,
		},
	})
}

type articleRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	CategoryIDs []uint `json:"category_ids"`
	Tags        string `json:"tags"`
}

// CreateArticle godoc
// @Summary Publish a new article
// @Tags article
// @Accept json
// @Produce json
// @Param article body articleRequest true "Article data"
// @Success 201 {object} map[string]interface{} "Article created"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Router /articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Title and content are required",
			"error":   "Missing required fields",
		})
		return
	}

	// The duplicate-title check runs before any slugging, so a title that
	// only differs in punctuation is rejected here and never reaches slug
	// collision handling.
	if taken, err := ac.articleRepo.ExistsByTitle(req.Title, 0); err == nil && taken {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("An article with the title %q already exists", req.Title),
			"error":   "Duplicate title",
		})
		return
	}

	article := models.Article{
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		WriterID: userID,
	}

	if err := ac.articleRepo.Create(&article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("An article with the title %q already exists", req.Title),
				"error":   "Duplicate title",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}

	if len(req.CategoryIDs) > 0 {
		categories, err := ac.categoryRepo.FindByIDs(req.CategoryIDs)
		if err == nil {
			_ = ac.articleRepo.ReplaceCategories(&article, categories)
		}
	}
	if strings.TrimSpace(req.Tags) != "" {
		tags, err := ac.tagRepo.FindOrCreate(strings.Split(req.Tags, ","))
		if err == nil {
			_ = ac.articleRepo.ReplaceTags(&article, tags)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}

// UpdateArticle godoc
// @Summary Edit an article
// @Description Update title, content, image, categories and tags; the slug never changes
// @Tags article
// @Accept json
// @Produce json
// @Param slug path string true "Article slug"
// @Param article body articleRequest true "Article data"
// @Success 200 {object} map[string]interface{} "Article updated"
// @Failure 403 {object} map[string]interface{} "Not the writer"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{slug} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	userID := c.GetUint("user_id")

	article, err := ac.articleRepo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided slug",
		})
		return
	}

	if article.WriterID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You can only edit your own articles",
			"error":   "Permission denied",
		})
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Title and content are required",
			"error":   "Missing required fields",
		})
		return
	}

	if taken, err := ac.articleRepo.ExistsByTitle(req.Title, article.ID); err == nil && taken {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "An article with this title already exists. Please choose another title",
			"error":   "Duplicate title",
		})
		return
	}

	article.Title = req.Title
	article.Content = req.Content
	if req.Image != "" {
		article.Image = req.Image
	}

	if err := ac.articleRepo.Update(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "An article with this title already exists. Please choose another title",
				"error":   "Duplicate title",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	categories, err := ac.categoryRepo.FindByIDs(req.CategoryIDs)
	if err == nil {
		_ = ac.articleRepo.ReplaceCategories(article, categories)
	}
	tags, err := ac.tagRepo.FindOrCreate(strings.Split(req.Tags, ","))
	if err == nil {
		_ = ac.articleRepo.ReplaceTags(article, tags)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    article,
	})
}

// DeleteArticle godoc
// @Summary Delete an article
// @Description Removes the article and, through cascading deletes, its comments and likes
// @Tags article
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{} "Article deleted"
// @Failure 403 {object} map[string]interface{} "Not the writer"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{slug} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	userID := c.GetUint("user_id")

	article, err := ac.articleRepo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided slug",
		})
		return
	}

	if article.WriterID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You can only delete your own articles",
			"error":   "Permission denied",
		})
		return
	}

	if err := ac.articleRepo.Delete(article.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
		"data":    nil,
	})
}

// ToggleLike godoc
// @Summary Like or unlike an article
// @Description Flips the caller's membership in the article's liked-by set
// @Tags article
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{} "New like state"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/like/{slug} [post]
func (ac *ArticleController) ToggleLike(c *gin.Context) {
	userID := c.GetUint("user_id")

	article, err := ac.articleRepo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided slug",
		})
		return
	}

	liked, err := ac.articleRepo.IsLikedBy(article.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to toggle like",
			"error":   err.Error(),
		})
		return
	}

	var message string
	if liked {
		err = ac.articleRepo.RemoveLike(article.ID, userID)
		message = "Article unliked successfully"
	} else {
		err = ac.articleRepo.AddLike(article.ID, userID)
		message = "Article liked successfully"
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to toggle like",
			"error":   err.Error(),
		})
		return
	}

	likeCount, err := ac.articleRepo.LikeCount(article.ID)
	if err != nil {
		likeCount = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data": gin.H{
			"liked": !liked,
			"likes": likeCount,
		},
	})
}

// GetArticlesByCategory godoc
// @Summary Articles in a category
// @Tags article
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{} "Articles retrieved"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /category/{slug} [get]
func (ac *ArticleController) GetArticlesByCategory(c *gin.Context) {
	category, err := ac.categoryRepo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Category not found",
			"error":   "No category exists with the provided slug",
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	articles, total, err := ac.articleRepo.FindByCategory(category.ID, page, categoryPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data": gin.H{
			"category":       category,
			"articles":       articles,
			"total_articles": total,
			"page":           page,
			"per_page":       categoryPageSize,
		},
	})
}
