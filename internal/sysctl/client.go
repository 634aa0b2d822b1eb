// Package sysctl resolves names against a schema and drives reads and
// writes through the kernel gate.
package sysctl

import (
	"errors"
	"fmt"

	"github.com/danmuck/mibctl/internal/kernel"
	logs "github.com/danmuck/mibctl/internal/logging"
	"github.com/danmuck/mibctl/internal/mib"
	"github.com/danmuck/mibctl/internal/mib/value"
	"github.com/danmuck/mibctl/internal/observability"
)

// Client is safe for concurrent use; it holds no mutable state.
type Client struct {
	schema *mib.Schema
	gate   *kernel.Gate
}

type Option func(*Client)

// WithSchema replaces the built-in OpenBSD schema.
func WithSchema(s *mib.Schema) Option {
	return func(c *Client) {
		c.schema = s
	}
}

func New(prim kernel.Primitive, opts ...Option) *Client {
	c := &Client{gate: kernel.NewGate(prim)}
	for _, opt := range opts {
		opt(c)
	}
	if c.schema == nil {
		c.schema = mib.OpenBSD()
	}
	return c
}

// System returns a Client bound to the running kernel.
func System() *Client {
	return New(kernel.System{})
}

func (c *Client) Schema() *mib.Schema {
	return c.schema
}

// Resolve turns name into a Target without touching the kernel.
func (c *Client) Resolve(name string) (mib.Target, error) {
	t, err := c.schema.ResolveName(name)
	if err != nil {
		return mib.Target{}, reject(err)
	}
	return t, nil
}

// Read fetches the current value of t. Fixed scalars take one call with a
// buffer of the exact width; other shapes are probed for their length
// first. A probe reporting zero bytes yields an empty value.
func (c *Client) Read(t mib.Target) (value.Value, error) {
	if w, ok := value.Width(t.Shape); ok {
		return c.fetch(t, make([]byte, w))
	}
	n, err := c.gate.Probe(t.Address)
	if err != nil {
		return value.Value{}, fmt.Errorf("read %s: %w", t.Name, err)
	}
	if n == 0 {
		return value.Decode(t.Shape, nil)
	}
	return c.fetch(t, make([]byte, n))
}

func (c *Client) fetch(t mib.Target, buf []byte) (value.Value, error) {
	n, err := c.gate.Exchange(t.Address, buf, nil)
	if err != nil {
		return value.Value{}, fmt.Errorf("read %s: %w", t.Name, err)
	}
	v, err := value.Decode(t.Shape, buf[:n])
	if err != nil {
		return value.Value{}, fmt.Errorf("read %s: %w", t.Name, err)
	}
	logs.Debugf("sysctl.read name=%s addr=%s bytes=%d", t.Name, t.Address, n)
	return v, nil
}

// Write stores v at t in a single call without reading the old value.
// Read-only targets and shape mismatches fail before any kernel call.
func (c *Client) Write(t mib.Target, v value.Value) error {
	raw, err := c.prepare(t, v)
	if err != nil {
		return err
	}
	if err := c.gate.Set(t.Address, raw); err != nil {
		return fmt.Errorf("write %s: %w", t.Name, err)
	}
	logs.Infof("sysctl.write name=%s value=%s", t.Name, v)
	return nil
}

// Swap stores v at t and returns the value it replaced. Variable shapes
// need a probe to size the old-value buffer, so they take two calls.
func (c *Client) Swap(t mib.Target, v value.Value) (value.Value, error) {
	raw, err := c.prepare(t, v)
	if err != nil {
		return value.Value{}, err
	}
	w, fixed := value.Width(t.Shape)
	if !fixed {
		n, err := c.gate.Probe(t.Address)
		if err != nil {
			return value.Value{}, fmt.Errorf("swap %s: %w", t.Name, err)
		}
		w = n
	}
	buf := make([]byte, w)
	n, err := c.gate.Exchange(t.Address, buf, raw)
	if err != nil {
		return value.Value{}, fmt.Errorf("swap %s: %w", t.Name, err)
	}
	old, err := value.Decode(t.Shape, buf[:n])
	if err != nil {
		return value.Value{}, fmt.Errorf("swap %s: %w", t.Name, err)
	}
	logs.Infof("sysctl.write name=%s old=%s new=%s", t.Name, old, v)
	return old, nil
}

func (c *Client) prepare(t mib.Target, v value.Value) ([]byte, error) {
	if err := t.CheckWritable(); err != nil {
		return nil, reject(err)
	}
	if v.Shape != t.Shape {
		return nil, reject(fmt.Errorf("write %s: %w: target is %s, value is %s", t.Name, value.ErrShapeMismatch, t.Shape, v.Shape))
	}
	raw, err := value.Encode(v)
	if err != nil {
		return nil, reject(fmt.Errorf("write %s: %w", t.Name, err))
	}
	return raw, nil
}

// Get resolves name and reads it.
func (c *Client) Get(name string) (value.Value, error) {
	t, err := c.Resolve(name)
	if err != nil {
		return value.Value{}, err
	}
	return c.Read(t)
}

// Set applies a name=value expression and returns the old value.
func (c *Client) Set(expr string) (value.Value, error) {
	p, err := mib.Parse(expr)
	if err != nil {
		return value.Value{}, reject(err)
	}
	if !p.HasValue {
		return value.Value{}, reject(&mib.PathError{Kind: mib.ErrMalformedPath, Input: expr, Depth: -1, Reason: "missing " + mib.Assign + "value"})
	}
	t, err := c.schema.Resolve(p)
	if err != nil {
		return value.Value{}, reject(err)
	}
	r, err := c.assign(t, p.Value)
	if err != nil {
		return value.Value{}, err
	}
	return r.Old, nil
}

// Result is the outcome of one expression. For a plain name Old holds the
// value read; for name=value it holds the value replaced by New.
type Result struct {
	Target mib.Target
	Old    value.Value
	New    value.Value
	Wrote  bool
}

// Exec evaluates a name or name=value expression the way sysctl(8) does.
func (c *Client) Exec(expr string) (Result, error) {
	p, err := mib.Parse(expr)
	if err != nil {
		return Result{}, reject(err)
	}
	t, err := c.schema.Resolve(p)
	if err != nil {
		return Result{}, reject(err)
	}
	if !p.HasValue {
		v, err := c.Read(t)
		if err != nil {
			return Result{}, err
		}
		return Result{Target: t, Old: v}, nil
	}
	return c.assign(t, p.Value)
}

func (c *Client) assign(t mib.Target, literal string) (Result, error) {
	if err := t.CheckWritable(); err != nil {
		return Result{}, reject(err)
	}
	v, err := value.Parse(t.Shape, literal)
	if err != nil {
		return Result{}, reject(fmt.Errorf("write %s: %w", t.Name, err))
	}
	old, err := c.Swap(t, v)
	if err != nil {
		return Result{}, err
	}
	return Result{Target: t, Old: old, New: v, Wrote: true}, nil
}

// Setting is one entry of a write profile.
type Setting struct {
	Name  string
	Value string
}

// ApplyError identifies the profile entry that stopped Apply.
type ApplyError struct {
	Index   int
	Setting Setting
	Err     error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply entry %d (%s=%s): %v", e.Index, e.Setting.Name, e.Setting.Value, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Apply writes settings in order and stops at the first failure. Results
// for the entries applied before the failure are returned with the error.
func (c *Client) Apply(settings []Setting) ([]Result, error) {
	out := make([]Result, 0, len(settings))
	for i, s := range settings {
		t, err := c.Resolve(s.Name)
		if err != nil {
			return out, &ApplyError{Index: i, Setting: s, Err: err}
		}
		r, err := c.assign(t, s.Value)
		if err != nil {
			return out, &ApplyError{Index: i, Setting: s, Err: err}
		}
		out = append(out, r)
	}
	return out, nil
}

// reject counts an error raised before any kernel call.
func reject(err error) error {
	observability.RecordLocalRejection(rejectionKind(err))
	logs.Debugf("sysctl.reject err=%v", err)
	return err
}

func rejectionKind(err error) string {
	if k := mib.KindName(err); k != "" {
		return k
	}
	switch {
	case errors.Is(err, value.ErrShapeMismatch):
		return "shape_mismatch"
	case errors.Is(err, value.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, value.ErrBadLiteral):
		return "bad_literal"
	default:
		return "other"
	}
}
