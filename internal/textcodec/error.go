package textcodec

import "errors"

// ErrInvalidUTF8 occurs when text or a stored value is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")
