package sysctl

import (
	"fmt"

	"github.com/danmuck/mibctl/internal/mib"
	"github.com/danmuck/mibctl/internal/mib/value"
)

// Accessor binds one name to a Go type. The name is resolved once and the
// resolved shape is checked against the type.
type Accessor[T any] struct {
	client *Client
	target mib.Target
	decode func(value.Value) (T, error)
	encode func(T) (value.Value, error)
}

func bind[T any](c *Client, name string, shapes []mib.Shape, dec func(value.Value) (T, error), enc func(T) (value.Value, error)) (Accessor[T], error) {
	t, err := c.Resolve(name)
	if err != nil {
		return Accessor[T]{}, err
	}
	for _, s := range shapes {
		if t.Shape == s {
			return Accessor[T]{client: c, target: t, decode: dec, encode: enc}, nil
		}
	}
	return Accessor[T]{}, reject(fmt.Errorf("bind %s: %w: %s", name, value.ErrShapeMismatch, t.Shape))
}

// Int32 binds an int or dev_t leaf.
func Int32(c *Client, name string) (Accessor[int32], error) {
	return bind(c, name, []mib.Shape{mib.ShapeInt32, mib.ShapeDeviceID},
		value.Value.Int32,
		func(v int32) (value.Value, error) { return value.NewInt32(v), nil })
}

// Int64 binds an int64_t or long leaf.
func Int64(c *Client, name string) (Accessor[int64], error) {
	return bind(c, name, []mib.Shape{mib.ShapeInt64, mib.ShapeLong},
		value.Value.Int64,
		func(v int64) (value.Value, error) { return value.NewInt64(v), nil })
}

// String binds a string leaf.
func String(c *Client, name string) (Accessor[string], error) {
	return bind(c, name, []mib.Shape{mib.ShapeCString},
		value.Value.Text,
		func(v string) (value.Value, error) { return value.NewString(v), nil })
}

// Uint64s binds a u_int64_t[] leaf, such as kern.cp_time on LP64 ports.
func Uint64s(c *Client, name string) (Accessor[[]uint64], error) {
	return bind(c, name, []mib.Shape{mib.ShapeU64Array},
		value.Value.Uint64s,
		func(v []uint64) (value.Value, error) { return value.NewUint64s(v), nil })
}

func (a Accessor[T]) Target() mib.Target {
	return a.target
}

func (a Accessor[T]) Get() (T, error) {
	v, err := a.client.Read(a.target)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.decode(v)
}

func (a Accessor[T]) Set(x T) error {
	v, err := a.encode(x)
	if err != nil {
		return err
	}
	return a.client.Write(a.target, a.retag(v))
}

// retag gives v the bound target's shape when both share a layout, e.g. an
// int32 written to a dev_t leaf.
func (a Accessor[T]) retag(v value.Value) value.Value {
	if v.Shape == a.target.Shape {
		return v
	}
	wv, ok1 := value.Width(v.Shape)
	wt, ok2 := value.Width(a.target.Shape)
	if ok1 && ok2 && wv == wt {
		v.Shape = a.target.Shape
	}
	return v
}
