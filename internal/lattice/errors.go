package lattice

import "errors"

// ErrInvalidDistance is returned by New when the code distance is not
// an odd integer >= 3; even distances are not supported by the
// heavy-hex lattice construction.
var ErrInvalidDistance = errors.New("invalid code distance")
