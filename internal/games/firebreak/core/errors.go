package core

import "errors"

// ErrInvalidArgument is returned when a caller breaks an engine contract:
// non-positive board dimensions, or a direct Swap with a pair the selection
// rules would never produce. Player input never yields this error.
var ErrInvalidArgument = errors.New("firebreak: invalid argument")
