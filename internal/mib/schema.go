package mib

import (
	"fmt"
	"slices"
	"strings"

	"github.com/danmuck/mibctl/internal/kernel"
)

// Access is a node's write annotation. AccessInherit defers to the nearest
// annotated ancestor.
type Access uint8

const (
	AccessInherit Access = iota
	AccessReadOnly
	AccessReadWrite
)

func (a Access) String() string {
	switch a {
	case AccessReadOnly:
		return "ro"
	case AccessReadWrite:
		return "rw"
	default:
		return "inherit"
	}
}

// Node is one level of the schema tree. Nodes are built with Dir, Leaf,
// Marker, Branch and Value and are frozen by Build.
type Node struct {
	name     string
	code     int32
	shape    Shape
	access   Access
	children []*Node
	byName   map[string]*Node
	param    *Param
}

// Param is a child level addressed by a looked-up value rather than a fixed
// name, e.g. an address family or a routing table id.
type Param struct {
	name     string
	lookup   Lookup
	optional bool
	def      int32
	next     *Node
}

func (p *Param) Name() string   { return p.name }
func (p *Param) Lookup() Lookup { return p.lookup }
func (p *Param) Next() *Node    { return p.next }

// Optional reports whether the segment may be omitted, in which case
// Default is used as the address component.
func (p *Param) Optional() bool { return p.optional }
func (p *Param) Default() int32 { return p.def }

// Dir declares an interior node.
func Dir(name string, code int32, children ...*Node) *Node {
	return &Node{name: name, code: code, children: children}
}

// Leaf declares a node with a value.
func Leaf(name string, code int32, shape Shape) *Node {
	return &Node{name: name, code: code, shape: shape}
}

// Marker declares a node whose kernel children are not modelled. Numeric
// segments after it are passed through as address components.
func Marker(name string, code int32) *Node {
	return Leaf(name, code, ShapeSubtreeMarker)
}

// Branch is an unnamed interior level, used as the target of a Param.
func Branch(children ...*Node) *Node {
	return Dir("", 0, children...)
}

// Value is an unnamed leaf, used as the target of a Param.
func Value(shape Shape) *Node {
	return Leaf("", 0, shape)
}

func (n *Node) RW() *Node {
	n.access = AccessReadWrite
	return n
}

func (n *Node) RO() *Node {
	n.access = AccessReadOnly
	return n
}

// Via routes segments that are not child names through lookup to next.
func (n *Node) Via(name string, lookup Lookup, next *Node) *Node {
	n.param = &Param{name: name, lookup: lookup, next: next}
	return n
}

// ViaOptional is Via with a default used when the path ends at n.
func (n *Node) ViaOptional(name string, lookup Lookup, def int32, next *Node) *Node {
	n.param = &Param{name: name, lookup: lookup, optional: true, def: def, next: next}
	return n
}

func (n *Node) Name() string   { return n.name }
func (n *Node) Code() int32    { return n.code }
func (n *Node) Shape() Shape   { return n.shape }
func (n *Node) Access() Access { return n.access }
func (n *Node) IsLeaf() bool   { return n.shape != ShapeNone }
func (n *Node) Param() *Param  { return n.param }

func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.byName[name]
	return c, ok
}

// Schema is a frozen namespace for one OS release family.
type Schema struct {
	release string
	root    *Node
}

// SchemaError reports a structural defect found by Build.
type SchemaError struct {
	Path   string
	Reason string
}

func (e SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("mib: schema root: %s", e.Reason)
	}
	return fmt.Sprintf("mib: schema node %q: %s", e.Path, e.Reason)
}

// Build validates the tree rooted at domains and returns a frozen copy.
// Later changes to the argument nodes do not affect the Schema.
func Build(release string, domains ...*Node) (*Schema, error) {
	root := Dir("", 0, domains...).RO()
	sealed, err := seal(root, nil, 0)
	if err != nil {
		return nil, err
	}
	return &Schema{release: release, root: sealed}, nil
}

func MustBuild(release string, domains ...*Node) *Schema {
	s, err := Build(release, domains...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Release() string { return s.release }

func (s *Schema) Domains() []*Node {
	return s.root.Children()
}

func seal(n *Node, trail []string, depth int) (*Node, error) {
	where := strings.Join(trail, Separator)
	if depth > kernel.MaxName {
		return nil, SchemaError{Path: where, Reason: fmt.Sprintf("deeper than %d levels", kernel.MaxName)}
	}
	out := &Node{name: n.name, code: n.code, shape: n.shape, access: n.access}

	if n.IsLeaf() {
		if len(n.children) > 0 || n.param != nil {
			return nil, SchemaError{Path: where, Reason: "leaf has children"}
		}
		return out, nil
	}
	if len(n.children) == 0 && n.param == nil {
		return nil, SchemaError{Path: where, Reason: "interior node has no children"}
	}

	out.byName = make(map[string]*Node, len(n.children))
	codes := make(map[int32]string, len(n.children))
	for _, c := range n.children {
		if c == nil {
			return nil, SchemaError{Path: where, Reason: "nil child"}
		}
		if c.name == "" || strings.ContainsAny(c.name, Separator+Assign) {
			return nil, SchemaError{Path: where, Reason: fmt.Sprintf("invalid child name %q", c.name)}
		}
		if _, dup := out.byName[c.name]; dup {
			return nil, SchemaError{Path: where, Reason: fmt.Sprintf("duplicate child name %q", c.name)}
		}
		if other, dup := codes[c.code]; dup {
			return nil, SchemaError{Path: where, Reason: fmt.Sprintf("children %q and %q share code %d", other, c.name, c.code)}
		}
		sc, err := seal(c, append(slices.Clone(trail), c.name), depth+1)
		if err != nil {
			return nil, err
		}
		out.byName[c.name] = sc
		codes[c.code] = c.name
		out.children = append(out.children, sc)
	}

	if p := n.param; p != nil {
		if p.lookup == nil || p.next == nil {
			return nil, SchemaError{Path: where, Reason: fmt.Sprintf("parameter %q is incomplete", p.name)}
		}
		next, err := seal(p.next, append(slices.Clone(trail), "<"+p.name+">"), depth+1)
		if err != nil {
			return nil, err
		}
		out.param = &Param{name: p.name, lookup: p.lookup, optional: p.optional, def: p.def, next: next}
	}
	return out, nil
}
