package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// messages mensajes por campo (nombre JSON) y regla. Lo que no esté aquí usa genericMessages.
var messages = map[string]map[string]string{
	"name": {
		"required": "El nombre es obligatorio",
		"min":      "El nombre debe tener al menos 3 caracteres",
	},
	"email": {
		"required": "El email es obligatorio",
		"email":    "Ingrese un email válido",
	},
	"username": {
		"required": "El usuario es obligatorio",
		"min":      "El usuario debe tener al menos 3 caracteres",
		"username": "Solo letras, números y guión bajo",
	},
	"password": {
		"required": "La contraseña es obligatoria",
		"min":      "Debe tener al menos 6 caracteres",
	},
	"confirm_password": {
		"required": "Confirme su contraseña",
		"eqfield":  "Las contraseñas no coinciden",
	},
	"street": {
		"required": "La calle es obligatoria",
	},
	"number": {
		"required": "El número es obligatorio",
	},
	"district": {
		"required": "Selecciona un distrito",
	},
	"discount": {
		"required": "El descuento es obligatorio",
		"min":      "El descuento debe estar entre 1 y 100",
		"max":      "El descuento debe estar entre 1 y 100",
	},
	"valid_until": {
		"required": "La fecha de vigencia es obligatoria",
		"datetime": "Fecha inválida (AAAA-MM-DD)",
	},
	"table": {
		"required": "Indica la mesa o el cliente",
	},
	"items": {
		"required": "Describe los items del pedido",
	},
}

var genericMessages = map[string]string{
	"required": "Este campo es obligatorio",
	"min":      "Valor demasiado corto",
	"max":      "Valor demasiado largo",
	"oneof":    "Valor no permitido",
	"email":    "Ingrese un email válido",
	"datetime": "Fecha inválida",
}

// Validator valida formularios antes de que lleguen a la red.
type Validator struct {
	v *validator.Validate
}

// New registra las reglas propias y usa el nombre JSON de cada campo como clave de error.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	}); err != nil {
		panic("validation: regla username: " + err.Error())
	}
	return &Validator{v: v}
}

// Struct valida s y devuelve *domain.FormError con un mensaje por campo, o nil.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.FormError{General: "Formulario inválido"}
	}
	fields := make(domain.FieldErrors, len(verrs))
	for _, fe := range verrs {
		key := fe.Field()
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = message(key, fe.Tag())
	}
	return &domain.FormError{Fields: fields}
}

func message(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if m, ok := byTag[tag]; ok {
			return m
		}
	}
	if m, ok := genericMessages[tag]; ok {
		return m
	}
	return "Valor inválido"
}
