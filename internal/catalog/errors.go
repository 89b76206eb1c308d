package catalog

import "errors"

var (
	// ErrMissingName is returned when the draft name is empty after trimming.
	ErrMissingName = errors.New("name required")

	// ErrInvalidPrice is returned when the draft price is not a positive number.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidStock is returned when the draft stock is not a non-negative number.
	ErrInvalidStock = errors.New("invalid stock")

	// ErrDuplicateName is returned when another product already uses the normalized name.
	ErrDuplicateName = errors.New("name already exists")

	// ErrIndexOutOfRange is returned by StartEdit for an index outside the product list.
	ErrIndexOutOfRange = errors.New("product index out of range")
)

// IsValidationError reports whether err is one of the draft validation failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidStock) ||
		errors.Is(err, ErrDuplicateName)
}
