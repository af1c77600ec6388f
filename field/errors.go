package field

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero = errors.New("division by the zero polynomial")
	ErrMalformedInput = errors.New("malformed polynomial")

	// ErrPrecondition is wrapped by every error reporting an operand the
	// operation is not defined for.
	ErrPrecondition = errors.New("precondition violated")

	ErrNotIrreducible    = fmt.Errorf("%w: polynomial is not irreducible", ErrPrecondition)
	ErrNotInvertible     = fmt.Errorf("%w: element is not invertible", ErrPrecondition)
	ErrZeroPolynomial    = fmt.Errorf("%w: zero polynomial", ErrPrecondition)
	ErrInvalidArgument   = fmt.Errorf("%w: invalid argument", ErrPrecondition)
	ErrSearchTooLarge    = fmt.Errorf("%w: search space too large", ErrPrecondition)
	ErrUnknownPolicy     = fmt.Errorf("%w: unknown root counting policy", ErrPrecondition)
	errDivisionInvariant = errors.New("long division left a non-zero leading coefficient")
)
