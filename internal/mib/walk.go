package mib

import (
	"slices"
	"strings"
)

// Entry is one leaf reached by Walk.
type Entry struct {
	Name   string
	Target Target
	// Source names the node whose annotation decided Target.Mutable. It is
	// Name when the leaf is annotated itself and "" for the schema default.
	Source string
}

// Walk calls fn for every leaf in declaration order. Parameter levels are
// filled with their lookup's sample segment, and optional parameters are
// always spelled out. Walk stops at the first error fn returns.
func (s *Schema) Walk(fn func(Entry) error) error {
	return walk(s.root, nil, nil, s.root.access == AccessReadWrite, "", fn)
}

// Entries collects Walk's output.
func (s *Schema) Entries() []Entry {
	var out []Entry
	_ = s.Walk(func(e Entry) error {
		out = append(out, e)
		return nil
	})
	return out
}

func walk(n *Node, segs []string, addr Address, mutable bool, source string, fn func(Entry) error) error {
	if n.IsLeaf() {
		name := strings.Join(segs, Separator)
		return fn(Entry{
			Name:   name,
			Target: Target{Name: name, Address: slices.Clone(addr), Shape: n.shape, Mutable: mutable},
			Source: source,
		})
	}

	descend := func(next *Node, seg string, code int32) error {
		childSegs := append(slices.Clone(segs), seg)
		m, src := mutable, source
		if next.access != AccessInherit {
			m = next.access == AccessReadWrite
			src = strings.Join(childSegs, Separator)
		}
		return walk(next, childSegs, append(slices.Clone(addr), code), m, src, fn)
	}

	for _, c := range n.children {
		if err := descend(c, c.name, c.code); err != nil {
			return err
		}
	}
	if p := n.param; p != nil {
		seg := p.lookup.Sample()
		code, _ := p.lookup.Code(seg)
		if err := descend(p.next, seg, code); err != nil {
			return err
		}
	}
	return nil
}
