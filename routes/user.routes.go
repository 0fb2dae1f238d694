package routes

import (
	"inkwave/internal/controllers"
	"inkwave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	account := router.Group("/account")
	{
		account.POST("/register", userController.Register)
		account.GET("/activate/:token", userController.ActivateAccount)
		account.POST("/login", userController.Login)
		account.POST("/password/forgot", userController.ForgotPassword)
		account.POST("/password/reset/:token", userController.ResetPassword)
		account.GET("/profile/:username", userController.GetProfile)
	}

	authenticated := router.Group("/account", middleware.AuthMiddleware())
	{
		authenticated.POST("/password/change", userController.ChangePassword)
		authenticated.PUT("/profile", userController.UpdateProfile)
	}
}
