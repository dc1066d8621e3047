package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Телефон: +998XXXXXXXX или местный номер на 9 (всего 9 цифр)
var phonePattern = regexp.MustCompile(`^(?:\+998|9)\d{8}$`)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Имя поля берём из тега form, затем json
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	// Регистрация кастомных валидаторов
	validate.RegisterValidation("phone_uz", validateUzbekPhone)
}

// FieldError - ошибка конкретного поля
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// ValidationErrors - все ошибки валидации структуры
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, e := range v {
		messages = append(messages, formatFieldError(e))
	}
	return strings.Join(messages, "; ")
}

// Has проверяет, есть ли ошибка с данным правилом
func (v ValidationErrors) Has(rule string) bool {
	for _, e := range v {
		if e.Rule == rule {
			return true
		}
	}
	return false
}

// Validate валидирует структуру
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// IsPhone проверяет строку по правилу phone_uz
func IsPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// validateUzbekPhone проверяет формат узбекского телефона
func validateUzbekPhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

// formatValidationError переводит ошибки validator в ValidationErrors
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	out := make(ValidationErrors, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{Field: e.Field(), Rule: e.Tag(), Param: e.Param()})
	}
	return out
}

// formatFieldError форматирует ошибку конкретного поля
func formatFieldError(e FieldError) string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s обязательно для заполнения", e.Field)
	case "max":
		return fmt.Sprintf("%s должен быть максимум %s символов", e.Field, e.Param)
	case "phone_uz":
		return fmt.Sprintf("%s должен быть в формате +998XXXXXXXX или 9XXXXXXXX", e.Field)
	default:
		return fmt.Sprintf("%s не прошел валидацию: %s", e.Field, e.Rule)
	}
}
