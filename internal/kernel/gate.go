package kernel

import (
	"fmt"
	"slices"
	"time"

	logs "github.com/danmuck/mibctl/internal/logging"
	"github.com/danmuck/mibctl/internal/observability"
)

// MaxName is CTL_MAXNAME: the longest address the kernel accepts.
const MaxName = 12

// Primitive performs one sysctl(2) call.
//
// old == nil with oldlen != nil asks the kernel for the required length.
// oldlen == nil means no output is requested. new == nil means nothing is
// written. A non-nil empty old or new is a zero-length buffer, not an
// absent one. On success *oldlen holds the number of bytes produced.
type Primitive interface {
	Sysctl(addr []int32, old []byte, oldlen *uintptr, new []byte) error
}

type Phase string

const (
	PhaseProbe Phase = "probe"
	PhaseFetch Phase = "fetch"
	PhaseSet   Phase = "set"
)

// Gate is the single chokepoint in front of a Primitive.
type Gate struct {
	prim Primitive
}

func NewGate(p Primitive) *Gate {
	return &Gate{prim: p}
}

// Probe asks for the current byte length of the value at addr.
func (g *Gate) Probe(addr []int32) (int, error) {
	var n uintptr
	if err := g.call(PhaseProbe, addr, nil, &n, nil); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Exchange fills old (when non-nil) and writes new (when non-nil) in one
// call. It returns the number of bytes the kernel produced into old.
func (g *Gate) Exchange(addr []int32, old, new []byte) (int, error) {
	phase := PhaseFetch
	if new != nil {
		phase = PhaseSet
	}
	n := uintptr(len(old))
	if err := g.call(phase, addr, old, &n, new); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Set writes new without requesting the old value.
func (g *Gate) Set(addr []int32, new []byte) error {
	return g.call(PhaseSet, addr, nil, nil, new)
}

func (g *Gate) call(phase Phase, addr []int32, old []byte, oldlen *uintptr, new []byte) error {
	if len(addr) == 0 || len(addr) > MaxName {
		return fmt.Errorf("%w: %d", ErrBadAddress, len(addr))
	}
	if oldlen != nil && old != nil && *oldlen > uintptr(len(old)) {
		return fmt.Errorf("%w: %d > %d", ErrBufferLength, *oldlen, len(old))
	}

	start := time.Now()
	err := g.prim.Sysctl(slices.Clone(addr), old, oldlen, new)
	call := observability.KernelCall{
		Phase:   string(phase),
		Address: fmt.Sprint(addr),
		Outcome: observability.OutcomeOK,
		OldLen:  len(old),
		NewLen:  len(new),
		Elapsed: time.Since(start),
	}
	if err != nil {
		kerr := &Error{Phase: phase, Address: slices.Clone(addr), Errno: err, Class: Classify(err)}
		call.Outcome = kerr.Class.String()
		observability.ObserveKernelCall(logs.Logger(), call)
		return kerr
	}
	if oldlen != nil && old != nil && *oldlen > uintptr(len(old)) {
		call.Outcome = "overrun"
		observability.ObserveKernelCall(logs.Logger(), call)
		return fmt.Errorf("%s %v: %w: kernel reported %d > %d", phase, addr, ErrBufferLength, *oldlen, len(old))
	}
	observability.ObserveKernelCall(logs.Logger(), call)
	return nil
}
