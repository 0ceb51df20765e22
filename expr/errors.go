package expr

import (
	"errors"
	"fmt"
)

// InvalidContextError reports that the context supplied to an
// expression is structurally incompatible with what the expression
// requires, for example a field accessor evaluated against a context of
// the wrong runtime type.
type InvalidContextError struct {
	// Expected names the context shape the expression requires.
	Expected string

	// Got names the runtime type actually supplied, when known.
	Got string
}

func (e *InvalidContextError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("invalid context: expected %s", e.Expected)
	}
	return fmt.Sprintf("invalid context: expected %s, got %s", e.Expected, e.Got)
}

// IsInvalidContext reports whether any error in err's chain is an
// InvalidContextError.
func IsInvalidContext(err error) bool {
	var ice *InvalidContextError
	return errors.As(err, &ice)
}
