package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

// ErrProfileNotFound is returned when a user has no stored profile row.
var ErrProfileNotFound = errors.New("profile not found")

// DefaultSkillLevel is assumed when a profile has no skill level stored.
const DefaultSkillLevel = "intermediate"

// PreferenceService aggregates a user's stored preference state into a
// normalized profile for prompt composition.
type PreferenceService struct {
	db *gorm.DB
}

var _ PreferenceProvider = (*PreferenceService)(nil)

// NewPreferenceService creates a new PreferenceService instance
func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// GetPreferences reads the stored profile and its satellite tables. Every
// list field comes back non-nil and skill level always holds a valid value,
// so downstream composition never has to null-check.
func (s *PreferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*types.PreferenceProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var prefs []models.DietaryPreference
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
		return nil, err
	}
	restrictions := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p.PreferenceType == "custom" && p.CustomName != "" {
			restrictions = append(restrictions, p.CustomName)
		} else {
			restrictions = append(restrictions, p.PreferenceType)
		}
	}

	var alls []models.Allergen
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&alls).Error; err != nil {
		return nil, err
	}
	allergens := make([]string, 0, len(alls))
	for _, a := range alls {
		allergens = append(allergens, a.AllergenName)
	}

	var appliances []models.UserAppliance
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&appliances).Error; err != nil {
		return nil, err
	}
	equipment := make([]string, 0, len(appliances))
	for _, a := range appliances {
		if a.ApplianceType == "custom" && a.CustomName != "" {
			equipment = append(equipment, a.CustomName)
		} else {
			equipment = append(equipment, a.ApplianceType)
		}
	}

	skill := profile.SkillLevel
	switch skill {
	case "beginner", "intermediate", "advanced":
	default:
		skill = DefaultSkillLevel
	}

	cuisines := profile.CuisinePreferences
	if cuisines == nil {
		cuisines = model.JSONBStringArray{}
	}
	goals := profile.Goals
	if goals == nil {
		goals = model.JSONBStringArray{}
	}

	return &types.PreferenceProfile{
		DietaryRestrictions: restrictions,
		Allergens:           allergens,
		CuisinePreferences:  cuisines,
		Goals:               goals,
		Equipment:           equipment,
		SkillLevel:          skill,
		PreferredPrepTime:   profile.PreferredPrepTime,
	}, nil
}

// UpdatePreferences replaces the user's stored preference state. The profile
// row is upserted; the satellite tables are replaced wholesale.
func (s *PreferenceService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (*types.PreferenceProfile, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.UserProfile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			profile = models.UserProfile{ID: uuid.New(), UserID: userID, SkillLevel: DefaultSkillLevel}
		}

		if req.SkillLevel != "" {
			profile.SkillLevel = req.SkillLevel
		}
		profile.PreferredPrepTime = req.PreferredPrepTime
		profile.CuisinePreferences = model.JSONBStringArray(req.CuisinePreferences)
		profile.Goals = model.JSONBStringArray(req.Goals)
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.DietaryPreference{}).Error; err != nil {
			return err
		}
		for _, r := range req.DietaryRestrictions {
			pref := models.DietaryPreference{ID: uuid.New(), UserID: userID, PreferenceType: r}
			if err := tx.Create(&pref).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Allergen{}).Error; err != nil {
			return err
		}
		for _, a := range req.Allergens {
			allergen := models.Allergen{ID: uuid.New(), UserID: userID, AllergenName: a, SeverityLevel: 3}
			if err := tx.Create(&allergen).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.UserAppliance{}).Error; err != nil {
			return err
		}
		for _, e := range req.Equipment {
			appliance := models.UserAppliance{ID: uuid.New(), UserID: userID, ApplianceType: e}
			if err := tx.Create(&appliance).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPreferences(ctx, userID)
}
