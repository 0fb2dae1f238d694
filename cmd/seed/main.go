package main

import (
	"flag"
	"log"

	"inkwave/database"
	"inkwave/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	numWriters := flag.Int("writers", 5, "Number of writers to create")
	articlesPerWriter := flag.Int("articles", 4, "Articles per writer")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedBlogData(*numWriters, *articlesPerWriter); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed successfully")
}
