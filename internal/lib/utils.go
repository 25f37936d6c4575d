package lib

import "fmt"

// Err wraps err with the failing operation name, keeping the original error
// available to errors.Is along the call chain.
func Err(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
