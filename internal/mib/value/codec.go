package value

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/danmuck/mibctl/internal/mib"
)

// LongWidth is sizeof(long). Go's int has the same width as C long on
// every OpenBSD port (ILP32 or LP64).
const LongWidth = strconv.IntSize / 8

// Width returns the exact byte width of a fixed scalar shape.
func Width(shape mib.Shape) (int, bool) {
	switch shape {
	case mib.ShapeInt32, mib.ShapeDeviceID:
		return 4, true
	case mib.ShapeInt64:
		return 8, true
	case mib.ShapeLong:
		return LongWidth, true
	default:
		return 0, false
	}
}

// ElemWidth returns the element width of an array shape, or 0.
func ElemWidth(shape mib.Shape) int {
	switch shape {
	case mib.ShapeByteArray:
		return 1
	case mib.ShapeU16Array:
		return 2
	case mib.ShapeU32Array:
		return 4
	case mib.ShapeU64Array:
		return 8
	default:
		return 0
	}
}

// Decode interprets buf, as filled in by the kernel, according to shape.
// The returned Value never aliases buf.
func Decode(shape mib.Shape, buf []byte) (Value, error) {
	if err := check(shape, buf); err != nil {
		return Value{}, err
	}
	if shape == mib.ShapeCString {
		if i := bytes.IndexByte(buf, 0); i >= 0 {
			buf = buf[:i]
		}
	}
	return Value{Shape: shape, Raw: bytes.Clone(buf)}, nil
}

// Encode returns the bytes to hand the kernel for v. Strings are sent
// without a terminating NUL.
func Encode(v Value) ([]byte, error) {
	if err := check(v.Shape, v.Raw); err != nil {
		return nil, err
	}
	if v.Shape == mib.ShapeCString && bytes.IndexByte(v.Raw, 0) >= 0 {
		return nil, fmt.Errorf("%w: string contains NUL", ErrBadLiteral)
	}
	out := bytes.Clone(v.Raw)
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

func check(shape mib.Shape, buf []byte) error {
	if w, ok := Width(shape); ok {
		if len(buf) != w {
			return &ShapeError{Shape: shape, Len: len(buf), Want: w}
		}
		return nil
	}
	if w := ElemWidth(shape); w > 0 {
		if len(buf)%w != 0 {
			return &ShapeError{Shape: shape, Len: len(buf), Want: w}
		}
		return nil
	}
	switch shape {
	case mib.ShapeCString, mib.ShapeOpaqueRecord, mib.ShapeSubtreeMarker:
		return nil
	default:
		return &ShapeError{Shape: shape, Len: len(buf)}
	}
}
