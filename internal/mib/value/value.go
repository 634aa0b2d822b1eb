// Package value converts between kernel sysctl buffers and typed values.
package value

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/danmuck/mibctl/internal/mib"
)

// Value is a decoded sysctl value: the kernel's bytes in native order,
// tagged with their shape.
type Value struct {
	Shape mib.Shape
	Raw   []byte
}

var native = binary.NativeEndian

// NewInt32 creates an int value.
func NewInt32(v int32) Value {
	buf := make([]byte, 4)
	native.PutUint32(buf, uint32(v))
	return Value{Shape: mib.ShapeInt32, Raw: buf}
}

// NewInt64 creates an int64_t value.
func NewInt64(v int64) Value {
	buf := make([]byte, 8)
	native.PutUint64(buf, uint64(v))
	return Value{Shape: mib.ShapeInt64, Raw: buf}
}

// NewLong creates a long value. On ILP32 ports v must fit in 32 bits.
func NewLong(v int64) (Value, error) {
	buf := make([]byte, LongWidth)
	if LongWidth == 4 {
		if v != int64(int32(v)) {
			return Value{}, ErrOutOfRange
		}
		native.PutUint32(buf, uint32(v))
	} else {
		native.PutUint64(buf, uint64(v))
	}
	return Value{Shape: mib.ShapeLong, Raw: buf}, nil
}

// NewDeviceID creates a dev_t value.
func NewDeviceID(v int32) Value {
	buf := make([]byte, 4)
	native.PutUint32(buf, uint32(v))
	return Value{Shape: mib.ShapeDeviceID, Raw: buf}
}

// NewString creates a string value.
func NewString(s string) Value {
	return Value{Shape: mib.ShapeCString, Raw: []byte(s)}
}

// NewBytes creates a byte array, opaque record or marker value from b.
func NewBytes(shape mib.Shape, b []byte) Value {
	return Value{Shape: shape, Raw: bytes.Clone(b)}
}

func NewUint16s(vs []uint16) Value {
	buf := make([]byte, 0, 2*len(vs))
	for _, v := range vs {
		buf = native.AppendUint16(buf, v)
	}
	return Value{Shape: mib.ShapeU16Array, Raw: buf}
}

func NewUint32s(vs []uint32) Value {
	buf := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		buf = native.AppendUint32(buf, v)
	}
	return Value{Shape: mib.ShapeU32Array, Raw: buf}
}

func NewUint64s(vs []uint64) Value {
	buf := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		buf = native.AppendUint64(buf, v)
	}
	return Value{Shape: mib.ShapeU64Array, Raw: buf}
}

// Int returns any fixed scalar widened to int64.
func (v Value) Int() (int64, error) {
	if err := v.want(v.Shape.Scalar()); err != nil {
		return 0, err
	}
	switch len(v.Raw) {
	case 4:
		return int64(int32(native.Uint32(v.Raw))), nil
	default:
		return int64(native.Uint64(v.Raw)), nil
	}
}

// Int32 returns an int or dev_t value.
func (v Value) Int32() (int32, error) {
	if err := v.want(v.Shape == mib.ShapeInt32 || v.Shape == mib.ShapeDeviceID); err != nil {
		return 0, err
	}
	return int32(native.Uint32(v.Raw)), nil
}

// Int64 returns an int64_t or long value.
func (v Value) Int64() (int64, error) {
	if err := v.want(v.Shape == mib.ShapeInt64 || v.Shape == mib.ShapeLong); err != nil {
		return 0, err
	}
	return v.Int()
}

// Text returns a string value.
func (v Value) Text() (string, error) {
	if err := v.want(v.Shape == mib.ShapeCString); err != nil {
		return "", err
	}
	return string(v.Raw), nil
}

// Bytes returns a copy of the raw value. It works for every shape.
func (v Value) Bytes() []byte {
	return bytes.Clone(v.Raw)
}

func (v Value) Uint16s() ([]uint16, error) {
	if err := v.want(v.Shape == mib.ShapeU16Array); err != nil {
		return nil, err
	}
	out := make([]uint16, len(v.Raw)/2)
	for i := range out {
		out[i] = native.Uint16(v.Raw[2*i:])
	}
	return out, nil
}

func (v Value) Uint32s() ([]uint32, error) {
	if err := v.want(v.Shape == mib.ShapeU32Array); err != nil {
		return nil, err
	}
	out := make([]uint32, len(v.Raw)/4)
	for i := range out {
		out[i] = native.Uint32(v.Raw[4*i:])
	}
	return out, nil
}

func (v Value) Uint64s() ([]uint64, error) {
	if err := v.want(v.Shape == mib.ShapeU64Array); err != nil {
		return nil, err
	}
	out := make([]uint64, len(v.Raw)/8)
	for i := range out {
		out[i] = native.Uint64(v.Raw[8*i:])
	}
	return out, nil
}

// Major and Minor split a dev_t as OpenBSD's major(3) and minor(3) do.
func (v Value) Major() (int32, error) {
	d, err := v.deviceID()
	if err != nil {
		return 0, err
	}
	return int32((d >> 8) & 0xff), nil
}

func (v Value) Minor() (int32, error) {
	d, err := v.deviceID()
	if err != nil {
		return 0, err
	}
	return int32((d & 0xff) | ((d & 0xffff0000) >> 8)), nil
}

func (v Value) deviceID() (uint32, error) {
	if err := v.want(v.Shape == mib.ShapeDeviceID); err != nil {
		return 0, err
	}
	return native.Uint32(v.Raw), nil
}

func (v Value) want(ok bool) error {
	if !ok {
		return ErrShapeMismatch
	}
	return check(v.Shape, v.Raw)
}

// Equal reports whether v and o hold the same shape and bytes.
func (v Value) Equal(o Value) bool {
	return v.Shape == o.Shape && bytes.Equal(v.Raw, o.Raw)
}

// String renders v the way sysctl(8) prints it: integers in decimal, arrays
// comma separated, dev_t as major,minor and records in hex.
func (v Value) String() string {
	if check(v.Shape, v.Raw) != nil {
		return hex.EncodeToString(v.Raw)
	}
	switch v.Shape {
	case mib.ShapeInt32, mib.ShapeInt64, mib.ShapeLong:
		n, _ := v.Int()
		return strconv.FormatInt(n, 10)
	case mib.ShapeDeviceID:
		maj, _ := v.Major()
		mnr, _ := v.Minor()
		return strconv.Itoa(int(maj)) + "," + strconv.Itoa(int(mnr))
	case mib.ShapeCString:
		return string(v.Raw)
	case mib.ShapeU16Array:
		vs, _ := v.Uint16s()
		return joinUints(vs)
	case mib.ShapeU32Array:
		vs, _ := v.Uint32s()
		return joinUints(vs)
	case mib.ShapeU64Array:
		vs, _ := v.Uint64s()
		return joinUints(vs)
	default:
		return hex.EncodeToString(v.Raw)
	}
}

func joinUints[T uint16 | uint32 | uint64](vs []T) string {
	parts := make([]string, len(vs))
	for i, x := range vs {
		parts[i] = strconv.FormatUint(uint64(x), 10)
	}
	return strings.Join(parts, ",")
}
