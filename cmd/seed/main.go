package main

import (
	"log"

	"github.com/google/uuid"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/models"
)

// Seeds a development user with a preference profile so the generate
// endpoint works out of the box on a fresh database.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var existing models.User
	if err := db.Where("email = ?", "dev@platewise.local").First(&existing).Error; err == nil {
		log.Printf("Dev user already seeded: %s", existing.ID)
		return
	}

	user := models.User{
		ID:    uuid.New(),
		Name:  "Dev User",
		Email: "dev@platewise.local",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create dev user: %v", err)
	}

	prepTime := 45
	profile := models.UserProfile{
		ID:                 uuid.New(),
		UserID:             user.ID,
		SkillLevel:         "intermediate",
		PreferredPrepTime:  &prepTime,
		CuisinePreferences: model.JSONBStringArray{"italian", "mexican"},
		Goals:              model.JSONBStringArray{"high-protein"},
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatalf("Failed to create dev profile: %v", err)
	}

	seeds := []interface{}{
		&models.DietaryPreference{ID: uuid.New(), UserID: user.ID, PreferenceType: "vegetarian"},
		&models.Allergen{ID: uuid.New(), UserID: user.ID, AllergenName: "peanuts", SeverityLevel: 4},
		&models.UserAppliance{ID: uuid.New(), UserID: user.ID, ApplianceType: "oven"},
		&models.UserAppliance{ID: uuid.New(), UserID: user.ID, ApplianceType: "blender"},
	}
	for _, s := range seeds {
		if err := db.Create(s).Error; err != nil {
			log.Fatalf("Failed to seed preference data: %v", err)
		}
	}

	log.Printf("Seeded dev user %s", user.ID)
}
