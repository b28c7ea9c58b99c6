package database

import (
	"fmt"
	"log"
	"os"

	"kalakriti/internal/domain/artists"
	"kalakriti/internal/domain/artworks"
	"kalakriti/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Migrate runs the schema migration for every domain model. Tests call it
// against their own in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&users.Favorite{},
		&users.Follow{},
		&artists.Artist{},
		&artworks.Artwork{},
	)
}
