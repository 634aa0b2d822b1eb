package mib

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Lookup converts a path segment into an address component for a Param.
type Lookup interface {
	Code(segment string) (int32, bool)
	// Sample returns one accepted segment; used when enumerating the schema.
	Sample() string
	Describe() string
}

// Table is a fixed symbolic lookup.
type Table struct {
	label  string
	sample string
	codes  map[string]int32
}

func NewTable(label, sample string, codes map[string]int32) Table {
	return Table{label: label, sample: sample, codes: maps.Clone(codes)}
}

func (t Table) Code(segment string) (int32, bool) {
	c, ok := t.codes[segment]
	return c, ok
}

func (t Table) Sample() string { return t.sample }

func (t Table) Describe() string { return t.label }

// Names returns the accepted segments in sorted order.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t.codes))
}

// Range accepts plain decimal integers in [Min, Max].
type Range struct {
	Label    string
	Min, Max int32
}

func (r Range) Code(segment string) (int32, bool) {
	if segment == "" || segment[0] == '+' || segment[0] == '-' {
		return 0, false
	}
	if len(segment) > 1 && segment[0] == '0' {
		return 0, false
	}
	v, err := strconv.ParseInt(segment, 10, 32)
	if err != nil || int32(v) < r.Min || int32(v) > r.Max {
		return 0, false
	}
	return int32(v), true
}

func (r Range) Sample() string { return strconv.Itoa(int(r.Min)) }

func (r Range) Describe() string {
	return fmt.Sprintf("%s %d..%d", r.Label, r.Min, r.Max)
}

// Families maps address family names to OpenBSD AF_* values. "0" selects
// every family, as in net.route.0.0.
var Families = NewTable("address family", "inet", map[string]int32{
	"0":         0,
	"unix":      1,
	"local":     1,
	"inet":      2,
	"implink":   3,
	"pup":       4,
	"chaos":     5,
	"ns":        6,
	"iso":       7,
	"osi":       7,
	"ecma":      8,
	"datakit":   9,
	"ccitt":     10,
	"sna":       11,
	"decnet":    12,
	"dli":       13,
	"lat":       14,
	"hylink":    15,
	"appletalk": 16,
	"route":     17,
	"link":      18,
	"coip":      20,
	"cnt":       21,
	"ipx":       23,
	"inet6":     24,
	"isdn":      26,
	"e164":      26,
	"natm":      27,
	"encap":     28,
	"sip":       29,
	"key":       30,
	"bluetooth": 32,
	"mpls":      33,
})
