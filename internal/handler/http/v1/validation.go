package v1

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator настраивает валидатор запросов: имена полей в ошибках берутся
// из json-тегов, координаты проверяются как десятичные строки.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("decimal_latitude", decimalInRange(-90, 90))
	_ = v.RegisterValidation("decimal_longitude", decimalInRange(-180, 180))

	return v
}

// decimalInRange проверяет, что строка - корректное десятичное число в
// диапазоне [min, max].
func decimalInRange(min, max int64) validator.Func {
	lo := decimal.NewFromInt(min)
	hi := decimal.NewFromInt(max)
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return d.GreaterThanOrEqual(lo) && d.LessThanOrEqual(hi)
	}
}

// fieldErrors разворачивает ошибку валидатора в список ошибок по полям для
// тела 400-го ответа.
func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
		})
	}
	return out
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "decimal_latitude":
		return "must be a decimal string between -90 and 90"
	case "decimal_longitude":
		return "must be a decimal string between -180 and 180"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
