// Package kerneltest provides in-memory stand-ins for the sysctl(2)
// primitive.
package kerneltest

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sys/unix"
)

// Memory is a fake MIB keyed by address. It follows the kernel's two-phase
// rules: a nil output buffer reports the length, a short buffer fails with
// ENOMEM, and unknown addresses fail with EOPNOTSUPP.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	errs   map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		values: map[string][]byte{},
		errs:   map[string]error{},
	}
}

func key(addr []int32) string {
	return fmt.Sprint(addr)
}

// Store sets the bytes held at addr.
func (m *Memory) Store(addr []int32, b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key(addr)] = slices.Clone(b)
}

// Load returns the bytes held at addr.
func (m *Memory) Load(addr []int32) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.values[key(addr)]
	return slices.Clone(b), ok
}

// Fail makes every call against addr return err.
func (m *Memory) Fail(addr []int32, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[key(addr)] = err
}

func (m *Memory) Sysctl(addr []int32, old []byte, oldlen *uintptr, new []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(addr)
	if err, ok := m.errs[k]; ok {
		return err
	}
	cur, ok := m.values[k]
	if !ok {
		return unix.EOPNOTSUPP
	}
	if oldlen != nil {
		if old == nil {
			*oldlen = uintptr(len(cur))
		} else {
			if uintptr(len(cur)) > *oldlen {
				return unix.ENOMEM
			}
			copy(old, cur)
			*oldlen = uintptr(len(cur))
		}
	}
	if new != nil {
		m.values[k] = slices.Clone(new)
	}
	return nil
}

// Call is one recorded primitive invocation.
type Call struct {
	Addr   []int32
	Probe  bool
	OldLen int
	New    []byte
}

// Recorder counts and records calls before forwarding them to Next.
// A nil Next answers every call with success and no data.
type Recorder struct {
	Next Primitive

	mu    sync.Mutex
	calls []Call
}

// Primitive mirrors kernel.Primitive to avoid an import cycle in tests of
// package kernel itself.
type Primitive interface {
	Sysctl(addr []int32, old []byte, oldlen *uintptr, new []byte) error
}

func (r *Recorder) Sysctl(addr []int32, old []byte, oldlen *uintptr, new []byte) error {
	c := Call{Addr: slices.Clone(addr), New: slices.Clone(new)}
	if oldlen != nil {
		c.Probe = old == nil
		c.OldLen = int(*oldlen)
	}
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()

	if r.Next == nil {
		if oldlen != nil {
			*oldlen = 0
		}
		return nil
	}
	return r.Next.Sysctl(addr, old, oldlen, new)
}

func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
