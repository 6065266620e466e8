package overtime

import "errors"

// ErrInvalidWage indicates the hourly wage was absent, non-numeric, or
// not positive. Recovered locally with a usage message, never shown raw.
var ErrInvalidWage = errors.New("hourly wage must be a positive number")
