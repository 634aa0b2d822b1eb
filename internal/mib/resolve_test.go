package mib

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/danmuck/mibctl/internal/kernel"
	"github.com/danmuck/mibctl/internal/testutil/testlog"
)

func mustResolve(t *testing.T, name string) Target {
	t.Helper()
	tgt, err := OpenBSD().ResolveName(name)
	if err != nil {
		t.Fatalf("resolve %q: %v", name, err)
	}
	return tgt
}

func resolveErr(t *testing.T, name string, kind error) *PathError {
	t.Helper()
	_, err := OpenBSD().ResolveName(name)
	if !errors.Is(err, kind) {
		t.Fatalf("resolve %q: expected %v, got %v", name, kind, err)
	}
	var pe *PathError
	if !errors.As(err, &pe) {
		t.Fatalf("resolve %q: expected *PathError, got %T", name, err)
	}
	return pe
}

func TestResolveLeaves(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name    string
		addr    Address
		shape   Shape
		mutable bool
	}{
		{"kern.ostype", Address{1, 1}, ShapeCString, false},
		{"vm.uvmexp", Address{2, 4}, ShapeOpaqueRecord, false},
		{"kern.hostname", Address{1, 10}, ShapeCString, true},
		{"kern.allowkmem", Address{1, 52}, ShapeInt32, true},
		{"kern.consdev", Address{1, 75}, ShapeDeviceID, false},
		{"kern.cp_time", Address{1, 40}, longArray(), false},
		{"kern.cp_time2.3", Address{1, 71, 3}, longArray(), false},
		{"kern.tty.tk_nin", Address{1, 44, 1}, ShapeInt64, false},
		{"hw.serialno", Address{6, 17}, ShapeCString, false},
		{"hw.physmem", Address{6, 19}, ShapeInt64, false},
		{"hw.ncpufound", Address{6, 21}, ShapeInt32, false},
		{"net.inet.tcp.always_keepalive", Address{4, 2, 6, 22}, ShapeInt32, true},
		{"net.inet6.icmp6.redirtimeout", Address{4, 24, 58, 3}, ShapeInt32, true},
		{"net.inet.ip.stats", Address{4, 2, 0, 33}, ShapeOpaqueRecord, false},
		{"net.inet.ip.ifq.maxlen", Address{4, 2, 0, 30, 2}, ShapeInt32, true},
		{"net.inet.ip.ifq.len", Address{4, 2, 0, 30, 1}, ShapeInt32, false},
		{"net.pipex.inq.drops", Address{4, 35, 2, 3}, ShapeInt32, false},
		{"net.bpf.bufsize", Address{4, 31, 1}, ShapeInt32, true},
		{"debug.2.value", Address{5, 2, 1}, ShapeInt32, true},
		{"debug.2.name", Address{5, 2, 0}, ShapeCString, false},
		{"vfs.ffs.clusterread", Address{10, 1, 1}, ShapeInt32, true},
		{"vfs.ffs.dirhash_mem", Address{10, 1, 19}, ShapeInt32, false},
		{"machdep.lidaction", Address{7, 14}, ShapeInt32, true},
	}
	for _, tc := range cases {
		got := mustResolve(t, tc.name)
		if !slices.Equal(got.Address, tc.addr) {
			t.Fatalf("%s: address got %v want %v", tc.name, got.Address, tc.addr)
		}
		if got.Shape != tc.shape || got.Mutable != tc.mutable {
			t.Fatalf("%s: got shape=%s mutable=%v want shape=%s mutable=%v",
				tc.name, got.Shape, got.Mutable, tc.shape, tc.mutable)
		}
		if got.Name != tc.name {
			t.Fatalf("%s: unexpected target name %q", tc.name, got.Name)
		}
	}
}

func TestResolveUnknownReportsDepthAndPrefix(t *testing.T) {
	testlog.Start(t)
	pe := resolveErr(t, "kern.nonexistent", ErrUnknownName)
	if pe.Depth != 1 || pe.Segment != "nonexistent" || pe.Prefix != "kern" {
		t.Fatalf("unexpected detail: %+v", pe)
	}
	pe = resolveErr(t, "bogus", ErrUnknownName)
	if pe.Depth != 0 || pe.Prefix != "" {
		t.Fatalf("unexpected detail: %+v", pe)
	}
}

func TestResolveUnknownAtEveryDepth(t *testing.T) {
	testlog.Start(t)
	for _, e := range OpenBSD().Entries() {
		segs := strings.Split(e.Name, Separator)
		for k := range segs {
			probe := slices.Clone(segs[:k+1])
			probe[k] = "zz-not-a-node"
			_, err := OpenBSD().Resolve(Path{Segments: probe})
			if err == nil {
				t.Fatalf("%q resolved unexpectedly", strings.Join(probe, Separator))
			}
			var pe *PathError
			if !errors.As(err, &pe) || !errors.Is(err, ErrUnknownName) {
				t.Fatalf("%q: expected unknown name, got %v", strings.Join(probe, Separator), err)
			}
			if pe.Depth != k {
				t.Fatalf("%q: depth got %d want %d", strings.Join(probe, Separator), pe.Depth, k)
			}
		}
	}
}

func TestResolveIncomplete(t *testing.T) {
	testlog.Start(t)
	pe := resolveErr(t, "kern", ErrIncompletePath)
	if pe.Depth != 1 {
		t.Fatalf("unexpected depth: %+v", pe)
	}
	resolveErr(t, "net.inet.ip", ErrIncompletePath)
	resolveErr(t, "net.route.0.inet.flags", ErrIncompletePath)
	resolveErr(t, "kern.cp_time2", ErrIncompletePath)
}

func TestResolveEveryStrictPrefixIsIncomplete(t *testing.T) {
	testlog.Start(t)
	for _, e := range OpenBSD().Entries() {
		segs := strings.Split(e.Name, Separator)
		for k := 1; k < len(segs); k++ {
			prefix := segs[:k]
			tgt, err := OpenBSD().Resolve(Path{Segments: prefix})
			if err == nil {
				// An optional parameter may complete the prefix on its own.
				if len(tgt.Address) != k+1 {
					t.Fatalf("%q: unexpected completion %v", strings.Join(prefix, Separator), tgt.Address)
				}
				continue
			}
			if !errors.Is(err, ErrIncompletePath) {
				t.Fatalf("%q: expected ErrIncompletePath, got %v", strings.Join(prefix, Separator), err)
			}
		}
	}
}

func TestResolveTrailingSegments(t *testing.T) {
	testlog.Start(t)
	pe := resolveErr(t, "kern.ostype.extra", ErrTrailingSegments)
	if pe.Depth != 2 || pe.Segment != "extra" {
		t.Fatalf("unexpected detail: %+v", pe)
	}
	resolveErr(t, "net.route.0.inet.stats.1", ErrTrailingSegments)
}

func TestResolveMarkerAcceptsNumericTail(t *testing.T) {
	testlog.Start(t)
	got := mustResolve(t, "hw.sensors.0.1.2")
	if !slices.Equal(got.Address, Address{6, 11, 0, 1, 2}) || got.Shape != ShapeSubtreeMarker {
		t.Fatalf("unexpected target: %+v", got)
	}
	pe := resolveErr(t, "hw.sensors.cpu0", ErrUnknownName)
	if pe.Depth != 2 {
		t.Fatalf("unexpected depth: %+v", pe)
	}
	resolveErr(t, "kern.proc.-1", ErrUnknownName)

	full := "hw.sensors" + strings.Repeat(".0", kernel.MaxName-2)
	if got := mustResolve(t, full); len(got.Address) != kernel.MaxName {
		t.Fatalf("expected %d components, got %d", kernel.MaxName, len(got.Address))
	}
	pe = resolveErr(t, full+".0", ErrTrailingSegments)
	if pe.Depth != kernel.MaxName {
		t.Fatalf("unexpected depth: %+v", pe)
	}
}

func TestResolveRouteParameters(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name string
		addr Address
	}{
		{"net.route.0.inet.dump", Address{4, 17, 0, 2, 1, 0}},
		{"net.route.0.inet6.dump.3", Address{4, 17, 0, 24, 1, 3}},
		{"net.route.0.0.dump", Address{4, 17, 0, 0, 1, 0}},
		{"net.route.0.inet.flags.1", Address{4, 17, 0, 2, 2, 1, 0}},
		{"net.route.0.inet.flags.1.7", Address{4, 17, 0, 2, 2, 1, 7}},
		{"net.route.0.local.iflist", Address{4, 17, 0, 1, 3, 0}},
		{"net.route.0.inet.table.5", Address{4, 17, 0, 2, 5, 5}},
		{"net.route.0.inet.stats", Address{4, 17, 0, 2, 4}},
	}
	for _, tc := range cases {
		got := mustResolve(t, tc.name)
		if !slices.Equal(got.Address, tc.addr) {
			t.Fatalf("%s: address got %v want %v", tc.name, got.Address, tc.addr)
		}
		if got.Mutable {
			t.Fatalf("%s: route leaves are read-only", tc.name)
		}
	}

	resolveErr(t, "net.route.1.inet.dump", ErrUnknownName)
	resolveErr(t, "net.route.00.inet.dump", ErrUnknownName)
	resolveErr(t, "net.route.0.atlantis.dump", ErrUnknownName)
	resolveErr(t, "net.route.0.inet.dump.256", ErrUnknownName)
	resolveErr(t, "net.route.0.inet.table", ErrIncompletePath)
}

func TestResolveNameRejectsAssignment(t *testing.T) {
	testlog.Start(t)
	resolveErr(t, "kern.hostname=x", ErrMalformedPath)
	resolveErr(t, "kern..hostname", ErrMalformedPath)
}

func TestResolveIsDeterministic(t *testing.T) {
	testlog.Start(t)
	for _, name := range []string{"kern.ostype", "net.route.0.inet.dump", "hw.sensors.1"} {
		a := mustResolve(t, name)
		b := mustResolve(t, name)
		if !slices.Equal(a.Address, b.Address) || a.Shape != b.Shape || a.Mutable != b.Mutable {
			t.Fatalf("%s: resolution differs: %+v vs %+v", name, a, b)
		}
	}
}

func TestCheckWritable(t *testing.T) {
	testlog.Start(t)
	if err := mustResolve(t, "kern.hostname").CheckWritable(); err != nil {
		t.Fatalf("kern.hostname should be writable: %v", err)
	}
	err := mustResolve(t, "kern.ostype").CheckWritable()
	if !errors.Is(err, ErrNotWritable) {
		t.Fatalf("expected ErrNotWritable, got %v", err)
	}
}

func TestAddressString(t *testing.T) {
	testlog.Start(t)
	if got := (Address{4, 17, 0, 2}).String(); got != "4.17.0.2" {
		t.Fatalf("unexpected rendering %q", got)
	}
}
