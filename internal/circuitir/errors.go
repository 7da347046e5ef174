package circuitir

import "errors"

// ErrInvalidResetBasis is returned by Reset when given a basis other
// than ResetZ or ResetX.
var ErrInvalidResetBasis = errors.New("invalid reset basis")
