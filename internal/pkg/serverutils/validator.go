package serverutils

import (
	"errors"

	"ai-humanizer-be/internal/dto"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs tag validation on a request body and converts
// the first failure into a domain validation error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return dto.NewValidationError(first.Field(), "invalid value for "+first.Field())
	}

	return dto.NewValidationError("", err.Error())
}
