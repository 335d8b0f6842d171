package objpath

import "errors"

// ErrNotSupported indicates a reverse conversion was requested. Path
// resolution is one-way; converting a resolved value back into an object
// graph has no meaning and always fails.
var ErrNotSupported = errors.New("objpath: reverse conversion not supported")
