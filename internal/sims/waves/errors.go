package waves

import "errors"

var (
	// ErrIndexOutOfRange reports an impulse aimed outside the spring chain.
	ErrIndexOutOfRange = errors.New("waves: index out of range")
	// ErrInvalidConfiguration reports constants that cannot produce a
	// converging chain.
	ErrInvalidConfiguration = errors.New("waves: invalid configuration")
	// ErrClosed reports use of a controller after Close.
	ErrClosed = errors.New("waves: controller closed")
)
