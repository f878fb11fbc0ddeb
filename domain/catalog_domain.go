package domain

import "recipe-service/entities"

var (
	MessageSuccessCreateKitchen    = "kitchen created successfully"
	MessageSuccessGetKitchens      = "success get kitchens"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessGetIngredients   = "success get ingredients"

	MessageFailedCreateKitchen    = "failed to create kitchen"
	MessageFailedGetKitchens      = "failed to get kitchens"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedGetIngredients   = "failed to get ingredients"
)

type (
	CreateKitchenRequest struct {
		Name string `json:"name" validate:"required,max=30"`
	}

	CreateIngredientRequest struct {
		Name string `json:"name" validate:"required,max=30"`
	}

	KitchenResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	IngredientResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
)

func NewKitchenResponse(k *entities.Kitchen) KitchenResponse {
	return KitchenResponse{ID: k.ID, Name: k.Name}
}

func NewIngredientResponse(i *entities.Ingredient) IngredientResponse {
	return IngredientResponse{ID: i.ID, Name: i.Name}
}
