package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

// Email reports whether address is a syntactically valid email address.
// It is a pure check: no network lookup, no side effects. The returned
// error carries the offending address as detail for the caller to wrap.
func Email(address string) error {
	if err := emailValidator.Var(address, "required,email"); err != nil {
		return fmt.Errorf("%q is not a valid email address", address)
	}
	return nil
}
