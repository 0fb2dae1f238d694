package controllers

import (
	"net/http"
	"strings"

	"inkwave/internal/models"
	"inkwave/internal/repository"

	"github.com/gin-gonic/gin"
)

// suggestionLimit caps each result bucket.
const suggestionLimit = 5

type SearchController struct {
	articleRepo  repository.ArticleRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

func NewSearchController(
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
) *SearchController {
	return &SearchController{
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

type articleSuggestion struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type writerSuggestion struct {
	Username string `json:"username"`
}

type categorySuggestion struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Suggestions godoc
// @Summary Search suggestions
// @Description Up to five matching articles, writers and categories; a blank query returns empty buckets
// @Tags search
// @Produce json
// @Param q query string false "Query text"
// @Success 200 {object} map[string]interface{} "Suggestions retrieved"
// @Router /search-suggestions [get]
func (sc *SearchController) Suggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	articleResults := []articleSuggestion{}
	writerResults := []writerSuggestion{}
	categoryResults := []categorySuggestion{}

	if query != "" {
		articles, err := sc.articleRepo.Search(query, suggestionLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Search failed",
				"error":   err.Error(),
			})
			return
		}
		for _, a := range articles {
			articleResults = append(articleResults, articleSuggestion{Title: a.Title, Slug: a.Slug})
		}

		writers, err := sc.userRepo.SearchByUsername(query, suggestionLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Search failed",
				"error":   err.Error(),
			})
			return
		}
		for _, w := range writers {
			writerResults = append(writerResults, writerSuggestion{Username: w.Username})
		}

		var categories []models.Category
		categories, err = sc.categoryRepo.SearchByName(query, suggestionLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Search failed",
				"error":   err.Error(),
			})
			return
		}
		for _, cat := range categories {
			categoryResults = append(categoryResults, categorySuggestion{Name: cat.Name, Slug: cat.Slug})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Suggestions retrieved successfully",
		"data": gin.H{
			"articles":   articleResults,
			"writers":    writerResults,
			"categories": categoryResults,
		},
	})
}
