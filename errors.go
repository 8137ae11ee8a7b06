package vmm

import "errors"

// ErrIndexOutOfBounds is returned by Get when an index lies outside of [0, N).
var ErrIndexOutOfBounds = errors.New("vmm: index out of bounds")
