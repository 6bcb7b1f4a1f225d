package configuration

import "errors"

// ErrInvalidValue occurs when a configuration key holds a value that cannot
// be parsed.
var ErrInvalidValue = errors.New("invalid configuration value")
