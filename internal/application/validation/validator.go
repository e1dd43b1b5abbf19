// Package validation envuelve go-playground/validator con las reglas del inventario
// y traduce las violaciones a domain.ValidationError con mensajes en español.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maturin/inventario-api/internal/domain"
	"github.com/maturin/inventario-api/internal/domain/entity"
)

// Tags propios registrados en el validador.
const (
	TagCategory = "equipment_category"
	TagStatus   = "equipment_status"
	TagBcrypt   = "bcrypt_len"
)

// MaxPasswordBytes límite de bcrypt; se cuenta en bytes, no en caracteres.
const MaxPasswordBytes = 72

// mensajes específicos por campo+tag; tienen prioridad sobre los genéricos por tag.
var fieldMessages = map[string]string{
	"nombre.required":     "El nombre es requerido",
	"email.required":      "Email inválido",
	"email.email":         "Email inválido",
	"password.required":   "La contraseña es requerida",
	"password.min":        "La contraseña debe tener al menos 6 caracteres",
	"password.bcrypt_len": "La contraseña no puede superar 72 bytes",
	"rol.oneof":           "Rol inválido",
	"name.required":       "El nombre es requerido",
	"name.min":            "El nombre es requerido",
	"category.required":   "La categoría es requerida",
	"stock.min":           "El stock no puede ser negativo",
	"stock.max":           "El stock supera el máximo permitido",
}

// Validator valida DTOs. Es seguro para uso concurrente una vez construido.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con los tags de dominio y nombres de campo tomados del tag json.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// Los errores de registro solo ocurren con tags vacíos o reservados.
	_ = v.RegisterValidation(TagCategory, func(fl validator.FieldLevel) bool {
		return entity.ValidCategory(fl.Field().String())
	})
	_ = v.RegisterValidation(TagStatus, func(fl validator.FieldLevel) bool {
		return entity.ValidStatus(fl.Field().String())
	})
	_ = v.RegisterValidation(TagBcrypt, func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	return &Validator{v: v}
}

// Struct valida s y devuelve *domain.ValidationError si alguna regla falla.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, exists := out.Fields[field]; exists {
			continue
		}
		out.Add(field, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", fe.Field())
	case TagCategory:
		return "Categoría inválida, valores permitidos: " + strings.Join(entity.Categories, ", ")
	case TagStatus:
		return "Estado inválido, valores permitidos: " + strings.Join(entity.Statuses, ", ")
	case "max":
		return fmt.Sprintf("El campo %s supera la longitud máxima (%s)", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("El campo %s debe ser al menos %s", fe.Field(), fe.Param())
	case "email":
		return "Email inválido"
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("El campo %s es inválido", fe.Field())
	}
}
