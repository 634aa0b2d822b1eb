package mib

import "strings"

const (
	Separator = "."
	Assign    = "="
)

// Path is a tokenized name, optionally carrying a literal value from the
// name=value form.
type Path struct {
	Segments []string
	Value    string
	HasValue bool
	input    string
}

// Parse splits input into segments. It does not consult any schema.
func Parse(input string) (Path, error) {
	malformed := func(depth int, seg, reason string) (Path, error) {
		return Path{}, &PathError{Kind: ErrMalformedPath, Input: input, Depth: depth, Segment: seg, Reason: reason}
	}
	if input == "" {
		return malformed(-1, "", "empty input")
	}

	name, val, assigned := strings.Cut(input, Assign)
	if assigned {
		if strings.Contains(val, Assign) {
			return malformed(-1, "", "more than one "+Assign)
		}
		if strings.Contains(val, Separator) {
			return malformed(-1, "", "value contains "+Separator)
		}
	}
	if name == "" {
		return malformed(-1, "", "empty name")
	}

	segs := strings.Split(name, Separator)
	for i, s := range segs {
		if s == "" {
			return malformed(i, "", "empty segment")
		}
	}
	return Path{Segments: segs, Value: val, HasValue: assigned, input: input}, nil
}

// Name is the dotted name without any value.
func (p Path) Name() string {
	return strings.Join(p.Segments, Separator)
}

func (p Path) String() string {
	if p.HasValue {
		return p.Name() + Assign + p.Value
	}
	return p.Name()
}

func (p Path) raw() string {
	if p.input != "" {
		return p.input
	}
	return p.String()
}
