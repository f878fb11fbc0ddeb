package utils

import (
	"errors"
	"recipe-service/domain"
	"recipe-service/entities"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return entities.Difficulty(fl.Field().String()).Valid()
	})
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// ToValidationError converts validator output into the domain error. Other
// errors are returned as they are.
func ToValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		out.Fields = append(out.Fields, domain.FieldError{Field: fe.Field(), Reason: reason})
	}
	return out
}
