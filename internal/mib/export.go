package mib

import (
	"io"

	"gopkg.in/yaml.v3"
)

type exportNode struct {
	Name     string       `yaml:"name,omitempty"`
	Code     int32        `yaml:"code"`
	Shape    string       `yaml:"shape,omitempty"`
	Access   string       `yaml:"access,omitempty"`
	Param    *exportParam `yaml:"param,omitempty"`
	Children []exportNode `yaml:"children,omitempty"`
}

type exportParam struct {
	Name     string     `yaml:"name"`
	Accepts  string     `yaml:"accepts"`
	Optional bool       `yaml:"optional,omitempty"`
	Default  int32      `yaml:"default,omitempty"`
	Next     exportNode `yaml:"next"`
}

type exportSchema struct {
	Release string       `yaml:"release"`
	Domains []exportNode `yaml:"domains"`
}

// WriteYAML renders the schema tree for review.
func (s *Schema) WriteYAML(w io.Writer) error {
	doc := exportSchema{Release: s.release}
	for _, d := range s.root.children {
		doc.Domains = append(doc.Domains, exportTree(d))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func exportTree(n *Node) exportNode {
	out := exportNode{Name: n.name, Code: n.code}
	if n.IsLeaf() {
		out.Shape = n.shape.String()
	}
	if n.access != AccessInherit {
		out.Access = n.access.String()
	}
	for _, c := range n.children {
		out.Children = append(out.Children, exportTree(c))
	}
	if p := n.param; p != nil {
		out.Param = &exportParam{
			Name:     p.name,
			Accepts:  p.lookup.Describe(),
			Optional: p.optional,
			Default:  p.def,
			Next:     exportTree(p.next),
		}
	}
	return out
}
