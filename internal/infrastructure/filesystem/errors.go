package filesystem

import "errors"

// ErrNotRegular is returned when a move source is not a regular file.
var ErrNotRegular = errors.New("not a regular file")
