// Package mat3: sentinel error set. All failures surfaced by this package
// are (or wrap) one of these sentinels, so callers match them with
// errors.Is. Messages carry the "mat3: " prefix for grep-friendly logs.
package mat3

import "errors"

var (
	// ErrSingular is returned (wrapped in a *SingularError) when Solve
	// produces a NaN or infinite solution component, i.e. the system is
	// unsolvable or numerically invalid.
	ErrSingular = errors.New("mat3: singular or numerically invalid system")

	// ErrIndexOutOfBounds indicates a row or column index outside 0..2.
	// Only the checked accessors At and Set report it; E and SetE stay
	// unchecked by contract.
	ErrIndexOutOfBounds = errors.New("mat3: index out of bounds")

	// ErrBadShape indicates that an ingested gonum matrix is not 3×3.
	ErrBadShape = errors.New("mat3: matrix is not 3x3")
)
