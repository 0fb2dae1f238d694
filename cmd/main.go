package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"inkwave/database"
	"inkwave/internal/cache"
	"inkwave/internal/controllers"
	"inkwave/internal/mailer"
	"inkwave/internal/repository"
	"inkwave/internal/session"
	"inkwave/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is optional: without it article caching is skipped and view
	// dedup falls back to process memory.
	var views session.ViewTracker
	var articleRepo repository.ArticleRepository

	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: redis unavailable (%v), using in-memory view tracking", err)
		views = session.NewMemoryViewTracker()
		articleRepo = repository.NewArticleRepository(database.DB)
	} else {
		defer redisClient.Close()
		views = session.NewRedisViewTracker(redisClient)
		articleRepo = repository.NewCachedArticleRepository(database.DB, redisClient)
	}

	userRepo := repository.NewUserRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	tagRepo := repository.NewTagRepository(database.DB)
	newsletterRepo := repository.NewNewsletterRepository(database.DB)
	contactRepo := repository.NewContactRepository(database.DB)
	verificationRepo := repository.NewVerificationRepository(database.DB)
	resetRepo := repository.NewResetPasswordRepository(database.DB)

	mail := mailer.New(mailer.LoadConfig())

	userController := controllers.NewUserController(userRepo, articleRepo, verificationRepo, resetRepo, mail)
	articleController := controllers.NewArticleController(articleRepo, categoryRepo, tagRepo, commentRepo, views)
	commentController := controllers.NewCommentController(commentRepo, articleRepo)
	categoryController := controllers.NewCategoryController(categoryRepo)
	searchController := controllers.NewSearchController(articleRepo, userRepo, categoryRepo)
	newsletterController := controllers.NewNewsletterController(newsletterRepo, mail)
	contactController := controllers.NewContactController(contactRepo, mail)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterCommentRoutes(router, commentController)
	routes.RegisterUserRoutes(router, userController)
	routes.RegisterCategoryRoutes(router, categoryController)
	routes.RegisterSearchRoutes(router, searchController)
	routes.RegisterCoreRoutes(router, newsletterController, contactController)

	router.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}
		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("InkWave API server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
