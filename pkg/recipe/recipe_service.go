package recipe

import (
	"context"
	"errors"
	"fmt"
	"recipe-service/domain"
	"recipe-service/entities"
	"recipe-service/internal/pkg/logger"
	"recipe-service/internal/utils"
	"recipe-service/pkg/catalog"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error)
		GetRecipeByID(ctx context.Context, id int64) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id int64, req domain.UpdateRecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id int64) error
		FilterByIngredients(ctx context.Context, req domain.FilterRecipesRequest) ([]domain.Recipe, error)
		SearchRecipes(ctx context.Context, query string) ([]domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		referenceGate    catalog.ReferenceGate
		validator        *validator.Validate
		log              *logger.Logger
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	referenceGate catalog.ReferenceGate,
	validator *validator.Validate,
	log *logger.Logger,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		referenceGate:    referenceGate,
		validator:        validator,
		log:              log.With("service", "RecipeService"),
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (res domain.Recipe, err error) {
	defer func(start time.Time) { observe("create", start, err) }(time.Now())

	if req.CookingDifficulty == "" {
		req.CookingDifficulty = entities.DifficultyMedium
	}
	if err = s.validator.Struct(req); err != nil {
		return domain.Recipe{}, utils.ToValidationError(err)
	}

	var created *entities.Recipe
	err = s.recipeRepository.WithTransaction(ctx, func(tx *gorm.DB) error {
		kitchen, err := s.referenceGate.RequireKitchenByID(ctx, tx, req.KitchenID)
		if err != nil {
			return err
		}

		ingredientIDs := distinctIDs(req.RecipeIngredients)
		for _, id := range ingredientIDs {
			if _, err := s.referenceGate.RequireIngredientByID(ctx, tx, id); err != nil {
				return err
			}
		}

		recipe := &entities.Recipe{
			Title:             req.Title,
			Instruction:       req.Instruction,
			CookingTime:       req.CookingTime,
			CookingDifficulty: req.CookingDifficulty,
			KitchenID:         kitchen.ID,
		}
		if err := s.recipeRepository.CreateRecipe(ctx, tx, recipe); err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}

		items := make([]*entities.RecipeIngredient, 0, len(ingredientIDs))
		for _, id := range ingredientIDs {
			items = append(items, &entities.RecipeIngredient{RecipeID: recipe.ID, IngredientID: id})
		}
		if err := s.recipeRepository.AddRecipeIngredients(ctx, tx, items); err != nil {
			return fmt.Errorf("insert recipe ingredients: %w", err)
		}

		created, err = s.recipeRepository.GetRecipeByIDWithAssociations(ctx, tx, recipe.ID)
		return err
	})
	if err != nil {
		s.log.Warn("create recipe failed", "title", req.Title, "kitchen_id", req.KitchenID, "error", err)
		return domain.Recipe{}, err
	}

	s.log.Info("recipe created", "recipe_id", created.ID, "ingredients", len(created.RecipeIngredients))
	return domain.NewRecipe(created), nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id int64) (res domain.Recipe, err error) {
	defer func(start time.Time) { observe("get", start, err) }(time.Now())

	recipe, err := s.recipeRepository.GetRecipeByIDWithAssociations(ctx, nil, id)
	if err != nil {
		return domain.Recipe{}, recipeLookupError(err, id)
	}
	return domain.NewRecipe(recipe), nil
}

// UpdateRecipe applies the present fields of req in one transaction. Kitchen
// and ingredients are given by name; ingredient names replace the whole
// association set. Any failure leaves the recipe untouched.
func (s *recipeService) UpdateRecipe(ctx context.Context, id int64, req domain.UpdateRecipeRequest) (res domain.Recipe, err error) {
	defer func(start time.Time) { observe("update", start, err) }(time.Now())

	if err = s.validator.Struct(req); err != nil {
		return domain.Recipe{}, utils.ToValidationError(err)
	}
	if req.CookingTime != nil && *req.CookingTime <= 0 {
		return domain.Recipe{}, domain.NewValidationError("cooking_time", "gt=0")
	}

	var updated *entities.Recipe
	err = s.recipeRepository.WithTransaction(ctx, func(tx *gorm.DB) error {
		recipe, err := s.recipeRepository.GetRecipeByID(ctx, tx, id)
		if err != nil {
			return recipeLookupError(err, id)
		}

		if req.Title != nil {
			recipe.Title = *req.Title
		}
		if req.Instruction != nil {
			recipe.Instruction = *req.Instruction
		}
		if req.CookingTime != nil {
			recipe.CookingTime = *req.CookingTime
		}
		if req.CookingDifficulty != nil {
			recipe.CookingDifficulty = *req.CookingDifficulty
		}

		if req.KitchenName != nil {
			kitchen, err := s.referenceGate.RequireKitchenByName(ctx, tx, *req.KitchenName)
			if err != nil {
				return err
			}
			recipe.KitchenID = kitchen.ID
		}

		if req.IngredientNames != nil {
			if err := s.replaceIngredients(ctx, tx, recipe.ID, *req.IngredientNames); err != nil {
				return err
			}
		}

		if err := s.recipeRepository.SaveRecipe(ctx, tx, recipe); err != nil {
			return fmt.Errorf("save recipe: %w", err)
		}

		updated, err = s.recipeRepository.GetRecipeByIDWithAssociations(ctx, tx, recipe.ID)
		return err
	})
	if err != nil {
		s.log.Warn("update recipe failed", "recipe_id", id, "error", err)
		return domain.Recipe{}, err
	}

	s.log.Info("recipe updated", "recipe_id", id)
	return domain.NewRecipe(updated), nil
}

func (s *recipeService) replaceIngredients(ctx context.Context, tx *gorm.DB, recipeID int64, names []string) error {
	if err := s.recipeRepository.DeleteRecipeIngredients(ctx, tx, recipeID); err != nil {
		return fmt.Errorf("clear recipe ingredients: %w", err)
	}

	names = distinct(names)
	items := make([]*entities.RecipeIngredient, 0, len(names))
	for _, name := range names {
		ingredient, err := s.referenceGate.RequireIngredientByName(ctx, tx, name)
		if err != nil {
			return err
		}
		items = append(items, &entities.RecipeIngredient{RecipeID: recipeID, IngredientID: ingredient.ID})
	}

	if err := s.recipeRepository.AddRecipeIngredients(ctx, tx, items); err != nil {
		return fmt.Errorf("insert recipe ingredients: %w", err)
	}
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { observe("delete", start, err) }(time.Now())

	err = s.recipeRepository.WithTransaction(ctx, func(tx *gorm.DB) error {
		recipe, err := s.recipeRepository.GetRecipeByID(ctx, tx, id)
		if err != nil {
			return recipeLookupError(err, id)
		}
		if err := s.recipeRepository.DeleteRecipe(ctx, tx, recipe); err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("recipe deleted", "recipe_id", id)
	return nil
}

func (s *recipeService) FilterByIngredients(ctx context.Context, req domain.FilterRecipesRequest) (res []domain.Recipe, err error) {
	defer func(start time.Time) { observe("filter", start, err) }(time.Now())

	recipes, err := s.recipeRepository.FilterByIngredients(ctx, nil, req.Include, req.Exclude)
	if err != nil {
		return nil, fmt.Errorf("filter recipes: %w", err)
	}
	recipeSearchResults.Observe(float64(len(recipes)))
	return domain.NewRecipes(recipes), nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, query string) (res []domain.Recipe, err error) {
	defer func(start time.Time) { observe("search", start, err) }(time.Now())

	recipes, err := s.recipeRepository.SearchRecipes(ctx, nil, query)
	if err != nil {
		s.log.Warn("search recipes failed", "query", query, "error", err)
		return nil, &domain.SearchError{Query: query, Err: err}
	}
	recipeSearchResults.Observe(float64(len(recipes)))
	return domain.NewRecipes(recipes), nil
}

func recipeLookupError(err error, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundByID(domain.KindRecipe, id)
	}
	return fmt.Errorf("lookup recipe: %w", err)
}

func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
