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

type CategoryController struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryController(categoryRepo repository.CategoryRepository) *CategoryController {
	return &CategoryController{categoryRepo: categoryRepo}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory godoc
// @Summary Create a category
// @Tags category
// @Accept json
// @Produce json
// @Param category body categoryRequest true "Category name"
// @Success 201 {object} map[string]interface{} "Category created"
// @Failure 400 {object} map[string]interface{} "Duplicate or missing name"
// @Router /categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	if taken, err := cc.categoryRepo.ExistsByName(name); err == nil && taken {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "A category with this name already exists",
			"error":   "Duplicate category name",
		})
		return
	}

	category := models.Category{Name: name}
	if err := cc.categoryRepo.Create(&category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "A category with this name already exists",
				"error":   "Duplicate category name",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Category created successfully",
		"data":    category,
	})
}

// GetAllCategories godoc
// @Summary List categories
// @Tags category
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories retrieved"
// @Router /categories [get]
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.categoryRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve categories",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}
