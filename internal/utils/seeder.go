package utils

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"inkwave/database"
	"inkwave/internal/models"
	"inkwave/internal/repository"
)

var seedCategories = []string{
	"Technology", "Travel", "Food", "Science", "Culture", "Lifestyle",
}

var seedTagPool = []string{
	"golang", "writing", "tutorial", "opinion", "review", "guide", "news",
}

var loremWords = strings.Fields(
	"lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod " +
		"tempor incididunt ut labore et dolore magna aliqua enim ad minim veniam",
)

func loremParagraph(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = loremWords[rand.Intn(len(loremWords))]
	}
	return strings.Join(parts, " ")
}

// SeedBlogData fills an empty development database with writers, categories,
// articles and a few threaded comments.
func SeedBlogData(numWriters, articlesPerWriter int) error {
	db := database.DB

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	var categories []models.Category
	for _, name := range seedCategories {
		category := models.Category{Name: name}
		if err := categoryRepo.Create(&category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		categories = append(categories, category)
	}

	passwordHash, err := HashPassword("TestPassword123!")
	if err != nil {
		return err
	}

	var writers []models.User
	for i := 1; i <= numWriters; i++ {
		user := models.User{
			Username: fmt.Sprintf("writer%d", i),
			Email:    fmt.Sprintf("writer%d@example.com", i),
			Password: passwordHash,
			Bio:      loremParagraph(12),
		}
		if err := userRepo.CreateUser(&user); err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}
		if err := userRepo.SetUserVerified(user.Email); err != nil {
			return err
		}
		writers = append(writers, user)
	}

	for _, writer := range writers {
		for j := 1; j <= articlesPerWriter; j++ {
			article := models.Article{
				Title:    fmt.Sprintf("%s article %d", writer.Username, j),
				Content:  loremParagraph(150 + rand.Intn(300)),
				WriterID: writer.ID,
			}
			if err := articleRepo.Create(&article); err != nil {
				return fmt.Errorf("failed to seed article for %s: %w", writer.Username, err)
			}

			picked := categories[rand.Intn(len(categories))]
			if err := articleRepo.ReplaceCategories(&article, []models.Category{picked}); err != nil {
				return err
			}

			tags, err := tagRepo.FindOrCreate([]string{
				seedTagPool[rand.Intn(len(seedTagPool))],
				seedTagPool[rand.Intn(len(seedTagPool))],
			})
			if err != nil {
				return err
			}
			if err := articleRepo.ReplaceTags(&article, tags); err != nil {
				return err
			}

			commenter := writers[rand.Intn(len(writers))]
			root := models.Comment{
				Content:   loremParagraph(8 + rand.Intn(20)),
				WriterID:  commenter.ID,
				ArticleID: article.ID,
			}
			if err := commentRepo.Create(&root); err != nil {
				return err
			}
			reply := models.Comment{
				Content:   loremParagraph(5 + rand.Intn(10)),
				WriterID:  writer.ID,
				ArticleID: article.ID,
				ParentID:  &root.ID,
			}
			if err := commentRepo.Create(&reply); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded %d writers, %d categories, %d articles",
		len(writers), len(categories), len(writers)*articlesPerWriter)
	return nil
}
