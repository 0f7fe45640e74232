package form2

import (
	"fmt"
)

// shapeErr is returned by form2 functions in place of the panic raised by
// the corresponding must2 function.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the panic value if it is an error, so errors.Is matches
// scad.ErrInvalidArgument and scad.ErrDegenerateGeometry.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}
