package routes

import (
	"inkwave/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSearchRoutes(router *gin.Engine, searchController *controllers.SearchController) {
	router.GET("/search-suggestions", searchController.Suggestions)
}
