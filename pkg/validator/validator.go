// Package validator envuelve go-playground/validator con nombres de campo JSON
// y mensajes en español.
package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError detalle de un campo que no pasó la validación.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

// Errors conjunto de errores de validación de una petición.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

var permissionCodeRe = regexp.MustCompile(`^(\*|[a-z_]+:(leer|crear|editar|eliminar|\*))$`)

// Validator validador de structs listo para usar desde handlers.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con los tags propios registrados.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("permcode", func(fl validator.FieldLevel) bool {
		return permissionCodeRe.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// decimalValue expone decimal.Decimal como float64 para que gte/gt/lte funcionen.
func decimalValue(field reflect.Value) interface{} {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		f, _ := d.Float64()
		return f
	case *decimal.Decimal:
		if d == nil {
			return nil
		}
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Struct valida s y devuelve Errors (o nil).
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := make(Errors, 0, len(ves))
	for _, e := range ves {
		out = append(out, FieldError{Field: fieldPath(e), Message: message(e)})
	}
	return out
}

var std = New()

// Validate usa el validador compartido del paquete.
func Validate(s interface{}) error { return std.Struct(s) }

// IsPermissionCode indica si code tiene la forma modulo:accion o es el comodín *.
func IsPermissionCode(code string) bool { return permissionCodeRe.MatchString(code) }

// fieldPath quita el nombre del struct raíz: "CreateSaleRequest.items[0].cantidad" -> "items[0].cantidad".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "min":
		if e.Kind() == reflect.String {
			return "debe tener al menos " + e.Param() + " caracteres"
		}
		if e.Kind() == reflect.Slice {
			return "debe tener al menos " + e.Param() + " elementos"
		}
		return "debe ser al menos " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "debe tener como máximo " + e.Param() + " caracteres"
		}
		return "debe ser como máximo " + e.Param()
	case "uuid", "uuid4":
		return "debe ser un UUID válido"
	case "oneof":
		return "debe ser uno de: " + e.Param()
	case "gte":
		return "debe ser mayor o igual a " + e.Param()
	case "gt":
		return "debe ser mayor a " + e.Param()
	case "lte":
		return "debe ser menor o igual a " + e.Param()
	case "hexcolor":
		return "debe ser un color hexadecimal (#RRGGBB)"
	case "permcode":
		return "debe tener la forma modulo:accion (leer, crear, editar, eliminar o *) o ser *"
	case "nefield":
		return "debe ser distinto de " + e.Param()
	case "required_if", "required_without":
		return "es obligatorio en este caso"
	default:
		return "valor inválido"
	}
}
