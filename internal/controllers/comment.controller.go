package controllers

import (
	"errors"
	"net/http"
	"strings"

	"inkwave/internal/models"
	"inkwave/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

func NewCommentController(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository) *CommentController {
	return &CommentController{commentRepo: commentRepo, articleRepo: articleRepo}
}

type commentRequest struct {
	Content   string `json:"content"`
	CommentID uint   `json:"comment_id"`
	ParentID  uint   `json:"parent_id"`
}

// SubmitComment godoc
// @Summary Create, reply to or edit a comment
// @Description With comment_id set the existing comment's content is edited in place; with parent_id set a reply to that root comment is created; otherwise a new root comment is created
// @Tags comment
// @Accept json
// @Produce json
// @Param slug path string true "Article slug"
// @Param comment body commentRequest true "Comment data"
// @Success 200 {object} map[string]interface{} "Comment updated"
// @Success 201 {object} map[string]interface{} "Comment created"
// @Failure 400 {object} map[string]interface{} "Empty content or reply to a reply"
// @Failure 404 {object} map[string]interface{} "Article or comment not found"
// @Router /article/{slug}/comments [post]
func (cc *CommentController) SubmitComment(c *gin.Context) {
	userID := c.GetUint("user_id")

	article, err := cc.articleRepo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided slug",
		})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Please fill out the comment field correctly",
			"error":   "Comment content is required",
		})
		return
	}

	switch {
	case req.CommentID != 0:
		cc.editComment(c, article, req.CommentID, userID, content)
	case req.ParentID != 0:
		cc.createReply(c, article, req.ParentID, userID, content)
	default:
		cc.createRoot(c, article, userID, content)
	}
}

func (cc *CommentController) createRoot(c *gin.Context, article *models.Article, userID uint, content string) {
	comment := models.Comment{
		Content:   content,
		WriterID:  userID,
		ArticleID: article.ID,
	}

	if err := cc.commentRepo.Create(&comment); err != nil {
		cc.createFailed(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment added successfully",
		"data":    comment,
	})
}

func (cc *CommentController) createReply(c *gin.Context, article *models.Article, parentID, userID uint, content string) {
	parent, err := cc.commentRepo.FindByID(parentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided parent ID",
		})
		return
	}

	// Replies stay one level deep: a reply's parent must be a root comment.
	if !parent.IsRoot() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Replies to replies are not allowed",
			"error":   "Parent comment is itself a reply",
		})
		return
	}

	comment := models.Comment{
		Content:   content,
		WriterID:  userID,
		ArticleID: article.ID,
		ParentID:  &parent.ID,
	}

	if err := cc.commentRepo.Create(&comment); err != nil {
		cc.createFailed(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Reply added successfully",
		"data":    comment,
	})
}

func (cc *CommentController) editComment(c *gin.Context, article *models.Article, commentID, userID uint, content string) {
	comment, err := cc.commentRepo.FindByID(commentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	// The slug in the URL scopes the edit; a comment id from another
	// article is not reachable through it.
	if comment.ArticleID != article.ID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No such comment on this article",
		})
		return
	}

	if comment.WriterID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You can only edit your own comments",
			"error":   "Permission denied",
		})
		return
	}

	if err := cc.commentRepo.UpdateContent(comment.ID, content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update comment",
			"error":   err.Error(),
		})
		return
	}
	comment.Content = content

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment updated successfully",
		"data":    comment,
	})
}

func (cc *CommentController) createFailed(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Two comments slugged identically in the check-insert window.
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Please resubmit your comment",
			"error":   "Comment slug collision",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to create comment",
		"error":   err.Error(),
	})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Removes the comment and all of its replies
// @Tags comment
// @Produce json
// @Param slug path string true "Comment slug"
// @Success 200 {object} map[string]interface{} "Comment deleted"
// @Failure 403 {object} map[string]interface{} "Not the writer"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comment/{slug} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	userID := c.GetUint("user_id")

	comment, err := cc.commentRepo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided slug",
		})
		return
	}

	if comment.WriterID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You can only delete your own comments",
			"error":   "Permission denied",
		})
		return
	}

	if err := cc.commentRepo.Delete(comment.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete comment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment deleted successfully",
		"data":    nil,
	})
}
