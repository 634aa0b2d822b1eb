package value

import (
	"errors"
	"fmt"

	"github.com/danmuck/mibctl/internal/mib"
)

var (
	ErrShapeMismatch = errors.New("value: shape mismatch")
	ErrOutOfRange    = errors.New("value: out of range")
	ErrBadLiteral    = errors.New("value: bad literal")
)

// ShapeError reports a buffer whose length does not fit its shape. Want is
// the exact width for scalars and the element width for arrays.
type ShapeError struct {
	Shape mib.Shape
	Len   int
	Want  int
}

func (e *ShapeError) Error() string {
	if e.Shape.Scalar() {
		return fmt.Sprintf("%v: %s needs %d bytes, got %d", ErrShapeMismatch, e.Shape, e.Want, e.Len)
	}
	if e.Want > 0 {
		return fmt.Sprintf("%v: %s length %d is not a multiple of %d", ErrShapeMismatch, e.Shape, e.Len, e.Want)
	}
	return fmt.Sprintf("%v: %s carries no value", ErrShapeMismatch, e.Shape)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
