package domain

import (
	"recipe-service/entities"
	"time"
)

var (
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessSearchRecipes   = "success search recipes"

	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSearchRecipes   = "failed to search recipes"
)

type (
	CreateRecipeRequest struct {
		Title             string              `json:"title" validate:"required,max=70"`
		Instruction       string              `json:"instruction"`
		RecipeIngredients []int64             `json:"recipe_ingredients" validate:"dive,gt=0"`
		CookingTime       int                 `json:"cooking_time" validate:"gt=0"`
		CookingDifficulty entities.Difficulty `json:"cooking_difficulty" validate:"omitempty,difficulty"`
		KitchenID         int64               `json:"kitchen_id" validate:"required,gt=0"`
	}

	// UpdateRecipeRequest is a partial update: a nil field is left unchanged.
	UpdateRecipeRequest struct {
		Title             *string              `json:"title" validate:"omitempty,max=70"`
		Instruction       *string              `json:"instruction"`
		CookingTime       *int                 `json:"cooking_time" validate:"omitempty,gt=0"`
		CookingDifficulty *entities.Difficulty `json:"cooking_difficulty" validate:"omitempty,difficulty"`
		KitchenName       *string              `json:"kitchen_name" validate:"omitempty,max=30"`
		IngredientNames   *[]string            `json:"ingredient_names" validate:"omitempty,dive,max=30"`
	}

	FilterRecipesRequest struct {
		Include []string `query:"include"`
		Exclude []string `query:"exclude"`
	}

	SearchRecipesRequest struct {
		Query string `query:"q" validate:"required"`
	}

	RecipeIngredientResponse struct {
		IngredientID int64              `json:"ingredient_id"`
		Ingredient   IngredientResponse `json:"ingredient"`
	}

	Recipe struct {
		ID                int64                      `json:"id"`
		Title             string                     `json:"title"`
		Instruction       string                     `json:"instruction"`
		CookingTime       int                        `json:"cooking_time"`
		CookingDifficulty entities.Difficulty        `json:"cooking_difficulty"`
		KitchenID         int64                      `json:"kitchen_id"`
		Kitchen           *KitchenResponse           `json:"kitchen,omitempty"`
		RecipeIngredients []RecipeIngredientResponse `json:"recipe_ingredients"`
		Ingredients       []int64                    `json:"ingredients"`
		CreatedAt         time.Time                  `json:"created_at"`
		UpdatedAt         time.Time                  `json:"updated_at"`
	}
)

// NewRecipe maps a stored recipe, with whatever associations were loaded,
// to its response shape.
func NewRecipe(r *entities.Recipe) Recipe {
	res := Recipe{
		ID:                r.ID,
		Title:             r.Title,
		Instruction:       r.Instruction,
		CookingTime:       r.CookingTime,
		CookingDifficulty: r.CookingDifficulty,
		KitchenID:         r.KitchenID,
		RecipeIngredients: make([]RecipeIngredientResponse, 0, len(r.RecipeIngredients)),
		Ingredients:       make([]int64, 0, len(r.RecipeIngredients)),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.Kitchen != nil {
		k := NewKitchenResponse(r.Kitchen)
		res.Kitchen = &k
	}
	for _, ri := range r.RecipeIngredients {
		item := RecipeIngredientResponse{IngredientID: ri.IngredientID}
		if ri.Ingredient != nil {
			item.Ingredient = NewIngredientResponse(ri.Ingredient)
		}
		res.RecipeIngredients = append(res.RecipeIngredients, item)
		res.Ingredients = append(res.Ingredients, ri.IngredientID)
	}
	return res
}

func NewRecipes(recipes []*entities.Recipe) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipe(r))
	}
	return out
}
