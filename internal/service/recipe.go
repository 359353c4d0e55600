package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/normalize"
	"github.com/platewise/backend/internal/types"
)

// ErrRecipeNotFound is returned when the requested recipe row does not exist.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles reads of stored recipes and mutations of the
// per-user annotation rows. All reads go through the normalizer so callers
// only ever see the client shape.
type RecipeService struct {
	db *gorm.DB
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListForUser returns the user's generated recipes, optionally ordered by
// similarity to a search query. On postgres the embedding column drives the
// ordering; elsewhere a LIKE match is the fallback.
func (s *RecipeService) ListForUser(ctx context.Context, userID uuid.UUID, search string) ([]types.ClientRecipe, error) {
	query := s.db.WithContext(ctx).Where("created_by = ?", userID)

	if search != "" {
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(search)
			query = query.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		} else {
			like := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	var links []model.UserRecipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&links).Error; err != nil {
		return nil, err
	}
	linkByRecipe := make(map[uuid.UUID]*model.UserRecipe, len(links))
	for i := range links {
		linkByRecipe[links[i].RecipeID] = &links[i]
	}

	out := make([]types.ClientRecipe, 0, len(recipes))
	for i := range recipes {
		out = append(out, normalize.ToClient(&recipes[i], linkByRecipe[recipes[i].ID]))
	}
	return out, nil
}

// Get returns one recipe with the caller's annotation state merged in.
func (s *RecipeService) Get(ctx context.Context, userID, recipeID uuid.UUID) (*types.ClientRecipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	link, err := s.findLink(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	client := normalize.ToClient(&recipe, link)
	return &client, nil
}

// SetFavorite sets or clears the favorite flag on the caller's link row,
// creating the row if the caller has never touched this recipe before.
func (s *RecipeService) SetFavorite(ctx context.Context, userID, recipeID uuid.UUID, favorite bool) error {
	link, err := s.ensureLink(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	link.IsFavorite = favorite
	return s.db.WithContext(ctx).Save(link).Error
}

// Rate stores the caller's rating and optional notes for a recipe.
func (s *RecipeService) Rate(ctx context.Context, userID, recipeID uuid.UUID, rating int, notes string) error {
	link, err := s.ensureLink(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	link.Rating = &rating
	if notes != "" {
		link.Notes = notes
	}
	return s.db.WithContext(ctx).Save(link).Error
}

// MarkCooked bumps the cooked counter and timestamp on the caller's link row.
func (s *RecipeService) MarkCooked(ctx context.Context, userID, recipeID uuid.UUID) error {
	link, err := s.ensureLink(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	now := time.Now()
	link.CookedCount++
	link.LastCookedAt = &now
	return s.db.WithContext(ctx).Save(link).Error
}

// SetImageURL attaches an uploaded image to a recipe.
func (s *RecipeService) SetImageURL(ctx context.Context, recipeID uuid.UUID, url string) error {
	result := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", recipeID).Update("image_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func (s *RecipeService) findLink(ctx context.Context, userID, recipeID uuid.UUID) (*model.UserRecipe, error) {
	var link model.UserRecipe
	err := s.db.WithContext(ctx).Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *RecipeService) ensureLink(ctx context.Context, userID, recipeID uuid.UUID) (*model.UserRecipe, error) {
	link, err := s.findLink(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if link != nil {
		return link, nil
	}

	// First interaction with a recipe the user didn't generate.
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).Select("id").First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	created := model.UserRecipe{ID: uuid.New(), UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}
