package gustcommon

import "errors"

// ErrUnknownGeneration is returned by ParseGeneration when the given tag
// does not match any supported generation.
var ErrUnknownGeneration = errors.New("unknown game generation")
