package exts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// BindAndValidate parses the payload into out and runs the validator
// over it. A failed validation writes nothing and comes back as a 400
// carrying field-level detail.
func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := validation.Struct(out); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			detail := lo.Map(fields, func(field validator.FieldError, _ int) string {
				return fmt.Sprintf("%s: %s", field.Field(), field.Tag())
			})
			return fiber.NewError(fiber.StatusBadRequest, strings.Join(detail, "; "))
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}
