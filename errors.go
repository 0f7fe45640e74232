package scad

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidArgument is returned or panicked when a caller passes
	// arguments outside an operation's domain, such as too few points.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateGeometry is returned or panicked when a computation
	// would produce non-finite coordinates, such as chamfering a corner
	// whose neighbour coincides with it.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// ErrMsg returns an error of the given kind annotated with the calling
// function's name and line number. errors.Is(err, kind) reports true.
func ErrMsg(kind error, msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %w: %s", kind, msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %w: %s", fn.Name(), line, kind, msg)
}
