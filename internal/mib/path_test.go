package mib

import (
	"errors"
	"slices"
	"testing"

	"github.com/danmuck/mibctl/internal/testutil/testlog"
)

func TestParseSplitsNameAndValue(t *testing.T) {
	testlog.Start(t)
	p, err := Parse("kern.hostname=myhost")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !slices.Equal(p.Segments, []string{"kern", "hostname"}) {
		t.Fatalf("unexpected segments: %q", p.Segments)
	}
	if !p.HasValue || p.Value != "myhost" {
		t.Fatalf("unexpected value: has=%v value=%q", p.HasValue, p.Value)
	}
	if p.Name() != "kern.hostname" || p.String() != "kern.hostname=myhost" {
		t.Fatalf("unexpected rendering: name=%q string=%q", p.Name(), p.String())
	}
}

func TestParseEmptyValueIsStillAnAssignment(t *testing.T) {
	testlog.Start(t)
	p, err := Parse("kern.domainname=")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !p.HasValue || p.Value != "" {
		t.Fatalf("expected empty assignment, got has=%v value=%q", p.HasValue, p.Value)
	}
}

func TestParseDoesNotInterpretSegments(t *testing.T) {
	testlog.Start(t)
	p, err := Parse("net.inet.ip.directed-broadcast")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p.Segments) != 4 || p.Segments[3] != "directed-broadcast" {
		t.Fatalf("unexpected segments: %q", p.Segments)
	}
	if p.HasValue {
		t.Fatalf("plain name must not carry a value")
	}
}

func TestParseMalformed(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		in    string
		depth int
	}{
		{in: "", depth: -1},
		{in: "=1", depth: -1},
		{in: "kern.hostname=a=b", depth: -1},
		{in: "kern.hostname=a.b", depth: -1},
		{in: ".kern", depth: 0},
		{in: "kern.", depth: 1},
		{in: "kern..ostype", depth: 1},
		{in: "net.inet..ip=1", depth: 2},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		if !errors.Is(err, ErrMalformedPath) {
			t.Fatalf("%q: expected ErrMalformedPath, got %v", tc.in, err)
		}
		var pe *PathError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected *PathError, got %T", tc.in, err)
		}
		if pe.Depth != tc.depth || pe.Input != tc.in {
			t.Fatalf("%q: unexpected detail %+v", tc.in, pe)
		}
	}
}

func TestKindName(t *testing.T) {
	testlog.Start(t)
	cases := map[error]string{
		ErrMalformedPath:    "malformed_path",
		ErrUnknownName:      "unknown_name",
		ErrIncompletePath:   "incomplete_path",
		ErrTrailingSegments: "trailing_segments",
		ErrNotWritable:      "not_writable",
		errors.New("other"): "",
	}
	for err, want := range cases {
		if got := KindName(&PathError{Kind: err}); got != want {
			t.Fatalf("KindName(%v): got %q want %q", err, got, want)
		}
	}
}
