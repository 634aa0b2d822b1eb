package mib

import "fmt"

// Finding is a writable leaf whose mutability comes from a subtree default
// rather than its own annotation. Each one needs checking against the
// kernel's handler: a blanket default can mark a read-only value writable.
type Finding struct {
	Name   string
	Source string
	Shape  Shape
}

func (f Finding) String() string {
	return fmt.Sprintf("%s (%s): writable inherited from %s", f.Name, f.Shape, f.Source)
}

// Audit lists every inherited-writable leaf in Walk order.
func (s *Schema) Audit() []Finding {
	var out []Finding
	_ = s.Walk(func(e Entry) error {
		if e.Target.Mutable && e.Source != e.Name {
			out = append(out, Finding{Name: e.Name, Source: e.Source, Shape: e.Target.Shape})
		}
		return nil
	})
	return out
}
