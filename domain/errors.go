package domain

import (
	"errors"
	"fmt"
	"strings"
)

type EntityKind string

const (
	KindRecipe     EntityKind = "recipe"
	KindKitchen    EntityKind = "kitchen"
	KindIngredient EntityKind = "ingredient"
)

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrKitchenNotFound    = errors.New("kitchen not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrValidation         = errors.New("validation failed")
)

// NotFoundError reports a referenced entity that does not exist. Identifier
// holds either the numeric id or the name that was looked up.
type NotFoundError struct {
	Kind       EntityKind
	Identifier string
}

func NewNotFoundByID(kind EntityKind, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, Identifier: fmt.Sprintf("id=%d", id)}
}

func NewNotFoundByName(kind EntityKind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Identifier: fmt.Sprintf("name=%q", name)}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s not found", e.Kind, e.Identifier)
}

func (e *NotFoundError) Unwrap() error {
	switch e.Kind {
	case KindRecipe:
		return ErrRecipeNotFound
	case KindKitchen:
		return ErrKitchenNotFound
	case KindIngredient:
		return ErrIngredientNotFound
	}
	return nil
}

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// SearchError wraps a store failure raised while evaluating a text query.
type SearchError struct {
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %q failed: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
