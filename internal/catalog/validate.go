package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ErrInvalidInput wraps every create-payload validation failure.
var ErrInvalidInput = errors.New("invalid input")

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "region", func(fl validator.FieldLevel) bool {
			return Region(fl.Field().String()).Valid()
		})
		mustRegister(v, "accommodation_type", func(fl validator.FieldLevel) bool {
			return AccommodationType(fl.Field().String()).Valid()
		})
		mustRegister(v, "blog_category", func(fl validator.FieldLevel) bool {
			return BlogCategory(fl.Field().String()).Valid()
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validator: %v", tag, err))
	}
}

// Validate checks a create payload against its struct tags.
// The returned error wraps ErrInvalidInput and names the failing fields.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}
