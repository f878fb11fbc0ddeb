package catalog

import (
	"context"
	"recipe-service/domain"
	"recipe-service/entities"
	"recipe-service/internal/pkg/logger"
	"recipe-service/internal/utils"
	"strings"

	"github.com/go-playground/validator/v10"
)

type (
	CatalogService interface {
		CreateKitchen(ctx context.Context, req domain.CreateKitchenRequest) (domain.KitchenResponse, error)
		ListKitchens(ctx context.Context) ([]domain.KitchenResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		ListIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
		validator         *validator.Validate
		log               *logger.Logger
	}
)

func NewCatalogService(catalogRepository CatalogRepository, validator *validator.Validate, log *logger.Logger) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		validator:         validator,
		log:               log.With("service", "CatalogService"),
	}
}

func (s *catalogService) CreateKitchen(ctx context.Context, req domain.CreateKitchenRequest) (domain.KitchenResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return domain.KitchenResponse{}, utils.ToValidationError(err)
	}

	kitchen := &entities.Kitchen{Name: req.Name}
	if err := s.catalogRepository.CreateKitchen(ctx, nil, kitchen); err != nil {
		s.log.Error("create kitchen failed", "name", req.Name, "error", err)
		return domain.KitchenResponse{}, err
	}
	s.log.Info("kitchen created", "kitchen_id", kitchen.ID, "name", kitchen.Name)
	return domain.NewKitchenResponse(kitchen), nil
}

func (s *catalogService) ListKitchens(ctx context.Context) ([]domain.KitchenResponse, error) {
	kitchens, err := s.catalogRepository.ListKitchens(ctx, nil)
	if err != nil {
		return nil, err
	}
	res := make([]domain.KitchenResponse, 0, len(kitchens))
	for _, k := range kitchens {
		res = append(res, domain.NewKitchenResponse(k))
	}
	return res, nil
}

func (s *catalogService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return domain.IngredientResponse{}, utils.ToValidationError(err)
	}

	ingredient := &entities.Ingredient{Name: req.Name}
	if err := s.catalogRepository.CreateIngredient(ctx, nil, ingredient); err != nil {
		s.log.Error("create ingredient failed", "name", req.Name, "error", err)
		return domain.IngredientResponse{}, err
	}
	s.log.Info("ingredient created", "ingredient_id", ingredient.ID, "name", ingredient.Name)
	return domain.NewIngredientResponse(ingredient), nil
}

func (s *catalogService) ListIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.catalogRepository.ListIngredients(ctx, nil)
	if err != nil {
		return nil, err
	}
	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, domain.NewIngredientResponse(i))
	}
	return res, nil
}
