package recipe

import (
	"context"
	"recipe-service/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// RecipeRepository is the query side of recipes. Methods taking tx run on
	// that transaction when it is non-nil.
	RecipeRepository interface {
		WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error

		CreateRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Recipe, error)
		GetRecipeByIDWithAssociations(ctx context.Context, tx *gorm.DB, id int64) (*entities.Recipe, error)
		SaveRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error

		AddRecipeIngredients(ctx context.Context, tx *gorm.DB, items []*entities.RecipeIngredient) error
		DeleteRecipeIngredients(ctx context.Context, tx *gorm.DB, recipeID int64) error

		FilterByIngredients(ctx context.Context, tx *gorm.DB, include, exclude []string) ([]*entities.Recipe, error)
		SearchRecipes(ctx context.Context, tx *gorm.DB, query string) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db             *gorm.DB
		searchLanguage string
	}
)

// NewRecipeRepository binds the repository to db. searchLanguage is the text
// search configuration (e.g. "russian", "english") used for queries; it must
// match the one the search_vector column was generated with.
func NewRecipeRepository(db *gorm.DB, searchLanguage string) RecipeRepository {
	return &recipeRepository{db: db, searchLanguage: searchLanguage}
}

func (r *recipeRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *recipeRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Kitchen").
		Preload("RecipeIngredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.id asc")
		}).
		Preload("RecipeIngredients.Ingredient")
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.conn(ctx, tx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByIDWithAssociations(ctx context.Context, tx *gorm.DB, id int64) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := withAssociations(r.conn(ctx, tx)).Where("recipes.id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// SaveRecipe writes the recipe's own columns. Loaded associations are ignored
// so a stale Kitchen pointer cannot override KitchenID.
func (r *recipeRepository) SaveRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Save(recipe).Error
}

// DeleteRecipe removes the recipe and its association rows. The foreign key
// also cascades; deleting them here keeps stores without FK enforcement clean.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error {
	return r.conn(ctx, tx).Select("RecipeIngredients").Delete(recipe).Error
}

func (r *recipeRepository) AddRecipeIngredients(ctx context.Context, tx *gorm.DB, items []*entities.RecipeIngredient) error {
	if len(items) == 0 {
		return nil
	}
	return r.conn(ctx, tx).Omit(clause.Associations).Create(&items).Error
}

func (r *recipeRepository) DeleteRecipeIngredients(ctx context.Context, tx *gorm.DB, recipeID int64) error {
	return r.conn(ctx, tx).
		Where("recipe_id = ?", recipeID).
		Delete(&entities.RecipeIngredient{}).Error
}

// FilterByIngredients returns recipes linked to every name in include and to
// none of the names in exclude, ordered by id. Empty filters match all recipes.
func (r *recipeRepository) FilterByIngredients(ctx context.Context, tx *gorm.DB, include, exclude []string) ([]*entities.Recipe, error) {
	base := r.conn(ctx, tx)
	include = distinct(include)
	exclude = distinct(exclude)

	query := withAssociations(base).Model(&entities.Recipe{})

	if len(include) > 0 {
		// Counting distinct names keeps the check exact when two ingredient
		// rows share a name.
		matching := base.Model(&entities.RecipeIngredient{}).
			Select("recipe_ingredients.recipe_id").
			Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
			Where("ingredients.name IN ?", include).
			Group("recipe_ingredients.recipe_id").
			Having("COUNT(DISTINCT ingredients.name) = ?", len(include))
		query = query.Where("recipes.id IN (?)", matching)
	}

	if len(exclude) > 0 {
		excluded := base.Model(&entities.RecipeIngredient{}).
			Select("recipe_ingredients.recipe_id").
			Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
			Where("ingredients.name IN ?", exclude)
		query = query.Where("recipes.id NOT IN (?)", excluded)
	}

	var recipes []*entities.Recipe
	if err := query.Order("recipes.id asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SearchRecipes matches query against search_vector with websearch syntax and
// orders by ts_rank, then id.
func (r *recipeRepository) SearchRecipes(ctx context.Context, tx *gorm.DB, query string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	err := withAssociations(r.conn(ctx, tx)).
		Where("recipes.search_vector @@ websearch_to_tsquery(?::regconfig, ?)", r.searchLanguage, query).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "ts_rank(recipes.search_vector, websearch_to_tsquery(?::regconfig, ?)) DESC, recipes.id ASC",
			Vars:               []interface{}{r.searchLanguage, query},
			WithoutParentheses: true,
		}}).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func distinct(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
