package value

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/mibctl/internal/mib"
)

// Parse converts the literal from a name=value expression into a Value of
// shape. Integers take decimal or 0x-prefixed hex, arrays take comma
// separated elements, and byte shapes take hex digits.
func Parse(shape mib.Shape, literal string) (Value, error) {
	switch shape {
	case mib.ShapeInt32:
		n, err := parseInt(shape, literal, 32)
		if err != nil {
			return Value{}, err
		}
		return NewInt32(int32(n)), nil
	case mib.ShapeDeviceID:
		n, err := parseInt(shape, literal, 32)
		if err != nil {
			return Value{}, err
		}
		return NewDeviceID(int32(n)), nil
	case mib.ShapeInt64:
		n, err := parseInt(shape, literal, 64)
		if err != nil {
			return Value{}, err
		}
		return NewInt64(n), nil
	case mib.ShapeLong:
		n, err := parseInt(shape, literal, LongWidth*8)
		if err != nil {
			return Value{}, err
		}
		return NewLong(n)
	case mib.ShapeCString:
		if strings.IndexByte(literal, 0) >= 0 {
			return Value{}, fmt.Errorf("%w: string contains NUL", ErrBadLiteral)
		}
		return NewString(literal), nil
	case mib.ShapeU16Array:
		vs, err := parseUints[uint16](shape, literal, 16)
		if err != nil {
			return Value{}, err
		}
		return NewUint16s(vs), nil
	case mib.ShapeU32Array:
		vs, err := parseUints[uint32](shape, literal, 32)
		if err != nil {
			return Value{}, err
		}
		return NewUint32s(vs), nil
	case mib.ShapeU64Array:
		vs, err := parseUints[uint64](shape, literal, 64)
		if err != nil {
			return Value{}, err
		}
		return NewUint64s(vs), nil
	case mib.ShapeByteArray, mib.ShapeOpaqueRecord, mib.ShapeSubtreeMarker:
		digits := strings.TrimPrefix(strings.TrimPrefix(literal, "0x"), "0X")
		b, err := hex.DecodeString(digits)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s wants hex digits: %v", ErrBadLiteral, shape, err)
		}
		return NewBytes(shape, b), nil
	default:
		return Value{}, &ShapeError{Shape: shape}
	}
}

func parseInt(shape mib.Shape, literal string, bits int) (int64, error) {
	s := strings.TrimSpace(literal)
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	base := 10
	if rest, ok := cutHex(digits); ok {
		digits, base = rest, 16
	}
	if neg {
		digits = "-" + digits
	}
	n, err := strconv.ParseInt(digits, base, bits)
	if err != nil {
		return 0, literalError(shape, literal, err)
	}
	return n, nil
}

func parseUints[T uint16 | uint32 | uint64](shape mib.Shape, literal string, bits int) ([]T, error) {
	if strings.TrimSpace(literal) == "" {
		return []T{}, nil
	}
	parts := strings.Split(literal, ",")
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		digits := strings.TrimSpace(p)
		base := 10
		if rest, ok := cutHex(digits); ok {
			digits, base = rest, 16
		}
		n, err := strconv.ParseUint(digits, base, bits)
		if err != nil {
			return nil, literalError(shape, literal, err)
		}
		out = append(out, T(n))
	}
	return out, nil
}

func cutHex(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest, true
	}
	return strings.CutPrefix(s, "0X")
}

func literalError(shape mib.Shape, literal string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit %s", ErrOutOfRange, literal, shape)
	}
	return fmt.Errorf("%w: %q is not a valid %s", ErrBadLiteral, literal, shape)
}
