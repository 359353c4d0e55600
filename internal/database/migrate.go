package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/models"
)

// RunMigrations brings the schema up to date. On postgres the pgvector
// extension must exist before the recipes table migrates its embedding
// column.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to create vector extension: %w", err)
		}
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DietaryPreference{},
		&models.Allergen{},
		&models.UserAppliance{},
		&model.Recipe{},
		&model.UserRecipe{},
		&model.GenerationLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Printf("[Database] migrations applied")
	return nil
}
