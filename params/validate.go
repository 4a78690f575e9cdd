package params

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation("contracthash", func(fl validator.FieldLevel) bool {
		_, err := ParseContractHash(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("failed to register contracthash validation: %v", err))
	}
	return v
}
