package catalog

import (
	"context"
	"strings"
	"testing"

	"recipe-service/domain"
	"recipe-service/internal/pkg/logger"
	"recipe-service/internal/testutil"
	"recipe-service/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(t *testing.T) CatalogService {
	t.Helper()
	db := testutil.SQLite(t)
	return NewCatalogService(NewCatalogRepository(db), utils.NewValidator(), logger.Nop())
}

func TestCatalogService_Kitchens(t *testing.T) {
	svc := newTestCatalogService(t)
	ctx := context.Background()

	k, err := svc.CreateKitchen(ctx, domain.CreateKitchenRequest{Name: "  Mexican "})
	require.NoError(t, err)
	assert.NotZero(t, k.ID)
	assert.Equal(t, "Mexican", k.Name)

	_, err = svc.CreateKitchen(ctx, domain.CreateKitchenRequest{Name: "Spanish"})
	require.NoError(t, err)

	list, err := svc.ListKitchens(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Mexican", list[0].Name)
	assert.Equal(t, "Spanish", list[1].Name)
}

func TestCatalogService_Ingredients(t *testing.T) {
	svc := newTestCatalogService(t)
	ctx := context.Background()

	list, err := svc.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	i, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Tomato"})
	require.NoError(t, err)

	list, err = svc.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.IngredientResponse{i}, list)
}

func TestCatalogService_Validation(t *testing.T) {
	svc := newTestCatalogService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		value  string
		reason string
	}{
		{name: "blank", value: "   ", reason: "required"},
		{name: "too long", value: strings.Repeat("x", 31), reason: "max=30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateKitchen(ctx, domain.CreateKitchenRequest{Name: tt.value})
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []domain.FieldError{{Field: "name", Reason: tt.reason}}, verr.Fields)

			_, err = svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: tt.value})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
