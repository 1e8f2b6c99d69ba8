package physics

import "errors"

var ErrInvalidCellSize = errors.New("grid cell size must be a positive finite number")
