package routes

import (
	"inkwave/internal/controllers"
	"inkwave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCategoryRoutes(router *gin.Engine, categoryController *controllers.CategoryController) {
	router.GET("/categories", categoryController.GetAllCategories)
	router.POST("/categories", middleware.AuthMiddleware(), categoryController.CreateCategory)
}
