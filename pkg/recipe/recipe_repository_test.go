package recipe

import (
	"context"
	"errors"
	"testing"

	"recipe-service/entities"
	"recipe-service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type filterFixture struct {
	repo                    RecipeRepository
	salad, guacamole, pasta *entities.Recipe
}

// salad: Tomato, Basil; guacamole: Avocado, Tomato; pasta: Tomato, Basil, Garlic.
func newFilterFixture(t *testing.T) filterFixture {
	t.Helper()
	db := testutil.SQLite(t)

	italian := testutil.SeedKitchen(t, db, "Italian")
	mexican := testutil.SeedKitchen(t, db, "Mexican")
	tomato := testutil.SeedIngredient(t, db, "Tomato")
	basil := testutil.SeedIngredient(t, db, "Basil")
	avocado := testutil.SeedIngredient(t, db, "Avocado")
	garlic := testutil.SeedIngredient(t, db, "Garlic")

	return filterFixture{
		repo:      NewRecipeRepository(db, "english"),
		salad:     testutil.SeedRecipe(t, db, "Salad", italian, tomato, basil),
		guacamole: testutil.SeedRecipe(t, db, "Guacamole", mexican, avocado, tomato),
		pasta:     testutil.SeedRecipe(t, db, "Pasta", italian, tomato, basil, garlic),
	}
}

func recipeIDs(recipes []*entities.Recipe) []int64 {
	ids := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterByIngredients(t *testing.T) {
	f := newFilterFixture(t)

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []int64
	}{
		{name: "no filters returns all", want: []int64{f.salad.ID, f.guacamole.ID, f.pasta.ID}},
		{name: "include single", include: []string{"Basil"}, want: []int64{f.salad.ID, f.pasta.ID}},
		{name: "include is a superset match", include: []string{"Tomato", "Basil"}, want: []int64{f.salad.ID, f.pasta.ID}},
		{name: "include duplicates", include: []string{"Basil", "Basil"}, want: []int64{f.salad.ID, f.pasta.ID}},
		{name: "include unknown name", include: []string{"Tomato", "Saffron"}, want: []int64{}},
		{name: "exclude", exclude: []string{"Garlic"}, want: []int64{f.salad.ID, f.guacamole.ID}},
		{name: "exclude unknown name", exclude: []string{"Saffron"}, want: []int64{f.salad.ID, f.guacamole.ID, f.pasta.ID}},
		{name: "include and exclude", include: []string{"Tomato"}, exclude: []string{"Avocado", "Garlic"}, want: []int64{f.salad.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.repo.FilterByIngredients(context.Background(), nil, tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, recipeIDs(got))
		})
	}
}

func TestFilterByIngredients_LoadsAssociations(t *testing.T) {
	f := newFilterFixture(t)

	got, err := f.repo.FilterByIngredients(context.Background(), nil, []string{"Avocado"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	require.NotNil(t, r.Kitchen)
	assert.Equal(t, "Mexican", r.Kitchen.Name)
	require.Len(t, r.RecipeIngredients, 2)
	assert.Equal(t, "Avocado", r.RecipeIngredients[0].Ingredient.Name)
	assert.Equal(t, "Tomato", r.RecipeIngredients[1].Ingredient.Name)
}

func TestRecipeRepository_DeleteRemovesAssociations(t *testing.T) {
	db := testutil.SQLite(t)
	kitchen := testutil.SeedKitchen(t, db, "Asian")
	ginger := testutil.SeedIngredient(t, db, "Ginger")
	recipe := testutil.SeedRecipe(t, db, "Stir Fry", kitchen, ginger)
	repo := NewRecipeRepository(db, "english")
	ctx := context.Background()

	require.NoError(t, repo.DeleteRecipe(ctx, nil, recipe))

	_, err := repo.GetRecipeByID(ctx, nil, recipe.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var links int64
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&links).Error)
	assert.Zero(t, links)

	var ingredients int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredients).Error)
	assert.Equal(t, int64(1), ingredients)
}

func TestRecipeRepository_SaveIgnoresLoadedKitchen(t *testing.T) {
	db := testutil.SQLite(t)
	mexican := testutil.SeedKitchen(t, db, "Mexican")
	spanish := testutil.SeedKitchen(t, db, "Spanish")
	taco := testutil.SeedRecipe(t, db, "Taco", mexican)
	repo := NewRecipeRepository(db, "english")
	ctx := context.Background()

	loaded, err := repo.GetRecipeByIDWithAssociations(ctx, nil, taco.ID)
	require.NoError(t, err)
	loaded.KitchenID = spanish.ID
	require.NoError(t, repo.SaveRecipe(ctx, nil, loaded))

	got, err := repo.GetRecipeByIDWithAssociations(ctx, nil, taco.ID)
	require.NoError(t, err)
	assert.Equal(t, spanish.ID, got.KitchenID)
	assert.Equal(t, "Spanish", got.Kitchen.Name)
}

func TestRecipeRepository_CreateSetsDefaultInstruction(t *testing.T) {
	db := testutil.SQLite(t)
	kitchen := testutil.SeedKitchen(t, db, "Asian")
	repo := NewRecipeRepository(db, "english")

	r := &entities.Recipe{Title: "Rice", CookingTime: 20, CookingDifficulty: entities.DifficultyEasy, KitchenID: kitchen.ID}
	require.NoError(t, repo.CreateRecipe(context.Background(), nil, r))
	assert.NotZero(t, r.ID)
	assert.Equal(t, entities.DefaultInstruction, r.Instruction)
}

func TestSearchRecipes_Postgres(t *testing.T) {
	db := testutil.Postgres(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewRecipeRepository(db, "english")

	kitchen := testutil.SeedKitchen(t, tx, "Fusion")
	r1 := &entities.Recipe{Title: "Zucchini fritters", Instruction: "Grate the zucchini and fry.", CookingTime: 25, CookingDifficulty: entities.DifficultyEasy, KitchenID: kitchen.ID}
	r2 := &entities.Recipe{Title: "Lemon bars", Instruction: "Add zucchini zest for colour.", CookingTime: 40, CookingDifficulty: entities.DifficultyMedium, KitchenID: kitchen.ID}
	r3 := &entities.Recipe{Title: "Plain toast", Instruction: "Toast bread.", CookingTime: 5, CookingDifficulty: entities.DifficultyEasy, KitchenID: kitchen.ID}
	for _, r := range []*entities.Recipe{r1, r2, r3} {
		require.NoError(t, repo.CreateRecipe(ctx, tx, r))
	}

	got, err := repo.SearchRecipes(ctx, tx, "zucchini")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, r1.ID, got[0].ID, "title and instruction hits rank first")
	assert.Equal(t, r2.ID, got[1].ID)
	assert.Equal(t, "Fusion", got[0].Kitchen.Name)

	got, err = repo.SearchRecipes(ctx, tx, "zucchini -lemon")
	require.NoError(t, err)
	assert.Equal(t, []int64{r1.ID}, recipeIDs(got))

	got, err = repo.SearchRecipes(ctx, tx, "nonexistentword")
	require.NoError(t, err)
	assert.Empty(t, got)
}
