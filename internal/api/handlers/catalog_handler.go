package handlers

import (
	"recipe-service/domain"
	"recipe-service/internal/api/presenters"
	"recipe-service/internal/utils"
	"recipe-service/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		CreateKitchen(c *fiber.Ctx) error
		ListKitchens(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
		ListIngredients(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) CreateKitchen(c *fiber.Ctx) error {
	req := new(domain.CreateKitchenRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateKitchen, utils.ToValidationError(err))
	}

	res, err := h.catalogService.CreateKitchen(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateKitchen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateKitchen)
}

func (h *catalogHandler) ListKitchens(c *fiber.Ctx) error {
	res, err := h.catalogService.ListKitchens(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetKitchens, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetKitchens)
}

func (h *catalogHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.CreateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateIngredient, utils.ToValidationError(err))
	}

	res, err := h.catalogService.CreateIngredient(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateIngredient)
}

func (h *catalogHandler) ListIngredients(c *fiber.Ctx) error {
	res, err := h.catalogService.ListIngredients(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetIngredients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}
