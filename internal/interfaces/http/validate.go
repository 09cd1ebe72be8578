package http

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockledger-api/internal/application/dto"
)

var validate = validator.New()

// Formatos brasileños heredados del registro de usuarios: CPF 000.000.000-00
// y teléfono (00) 00000-0000.
var (
	cpfRegex     = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	brPhoneRegex = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
)

func init() {
	// Registrar decimal.Decimal como tipo numérico para que tags como
	// min=0, gt=0 funcionen sin panic ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpfRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		return brPhoneRegex.MatchString(fl.Field().String())
	})
}

// bindAndValidate parsea el body JSON y corre las tags de go-playground/validator.
// Devuelve false tras escribir la respuesta de error; el handler debe retornar nil.
func bindAndValidate(c *fiber.Ctx, req interface{}) bool {
	if err := c.BodyParser(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []string
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos: " + strings.Join(fields, ", "),
		})
		return false
	}
	return true
}
