package mib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/mibctl/internal/kernel"
)

// Address is the numeric name the kernel understands.
type Address []int32

func (a Address) String() string {
	parts := make([]string, len(a))
	for i, c := range a {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, Separator)
}

// Target is a resolved name, ready for the invoker.
type Target struct {
	Name    string
	Address Address
	Shape   Shape
	Mutable bool
}

// CheckWritable returns ErrNotWritable for read-only targets.
func (t Target) CheckWritable() error {
	if t.Mutable {
		return nil
	}
	return &PathError{Kind: ErrNotWritable, Input: t.Name, Depth: -1, Reason: "read-only"}
}

// ResolveName parses and resolves name. The name=value form is rejected.
func (s *Schema) ResolveName(name string) (Target, error) {
	p, err := Parse(name)
	if err != nil {
		return Target{}, err
	}
	if p.HasValue {
		return Target{}, &PathError{Kind: ErrMalformedPath, Input: name, Depth: -1, Reason: "unexpected value"}
	}
	return s.Resolve(p)
}

// Resolve walks the schema along p. It never reads past the end of
// p.Segments and never returns a partial Target.
func (s *Schema) Resolve(p Path) (Target, error) {
	segs := p.Segments
	fail := func(kind error, depth int, seg, reason string) (Target, error) {
		prefix := ""
		if depth > 0 && depth <= len(segs) {
			prefix = strings.Join(segs[:depth], Separator)
		}
		return Target{}, &PathError{Kind: kind, Input: p.raw(), Depth: depth, Segment: seg, Prefix: prefix, Reason: reason}
	}
	if len(segs) == 0 {
		return fail(ErrMalformedPath, -1, "", "empty name")
	}

	addr := make(Address, 0, len(segs)+1)
	mutable := s.root.access == AccessReadWrite
	node := s.root
	i := 0
	for !node.IsLeaf() {
		if i == len(segs) {
			if node.param != nil && node.param.optional {
				addr = append(addr, node.param.def)
				node = node.param.next
				mutable = applyAccess(mutable, node.access)
				continue
			}
			return fail(ErrIncompletePath, i, "", fmt.Sprintf("%q is not a leaf", strings.Join(segs, Separator)))
		}

		seg := segs[i]
		if child, ok := node.byName[seg]; ok {
			addr = append(addr, child.code)
			node = child
		} else if node.param != nil {
			code, ok := node.param.lookup.Code(seg)
			if !ok {
				return fail(ErrUnknownName, i, seg, "not a valid "+node.param.lookup.Describe())
			}
			addr = append(addr, code)
			node = node.param.next
		} else {
			return fail(ErrUnknownName, i, seg, "")
		}
		mutable = applyAccess(mutable, node.access)
		i++
	}

	for ; i < len(segs); i++ {
		if node.shape != ShapeSubtreeMarker {
			return fail(ErrTrailingSegments, i, segs[i], "")
		}
		code, ok := markerCode(segs[i])
		if !ok {
			return fail(ErrUnknownName, i, segs[i], "expected a non-negative integer")
		}
		if len(addr) == kernel.MaxName {
			return fail(ErrTrailingSegments, i, segs[i], fmt.Sprintf("address longer than %d", kernel.MaxName))
		}
		addr = append(addr, code)
	}

	return Target{
		Name:    strings.Join(segs, Separator),
		Address: addr,
		Shape:   node.shape,
		Mutable: mutable,
	}, nil
}

func applyAccess(mutable bool, a Access) bool {
	switch a {
	case AccessReadOnly:
		return false
	case AccessReadWrite:
		return true
	default:
		return mutable
	}
}

var markerRange = Range{Label: "component", Min: 0, Max: 1<<31 - 1}

func markerCode(seg string) (int32, bool) {
	return markerRange.Code(seg)
}
