// config/db.go
package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/laudep/ItemCatalog/models"
)

// ConnectDB establishes the Postgres connection and runs migrations.
func ConnectDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		env := os.Getenv("ENV")
		if env == "development" || env == "dev" {
			dsn = "host=localhost user=catalog password=catalog dbname=itemcatalog port=5432 sslmode=disable"
		} else {
			log.Fatal("DATABASE_URL environment variable is required for production")
		}
	}

	// TranslateError maps driver duplicate-key errors to
	// gorm.ErrDuplicatedKey, which the user find-or-create relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("database connection error: ", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Item{}); err != nil {
		log.Fatal("database migration error: ", err)
	}

	log.Println("Connected to database")
	return db
}
