package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Struct checks the `validate` tags on a request DTO. Shape validation
// happens here, before the service layer is invoked.
func Struct(obj any) error {
	return v.Struct(obj)
}
