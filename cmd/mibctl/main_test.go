package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/mibctl/internal/kernel/kerneltest"
	"github.com/danmuck/mibctl/internal/mib/value"
	"github.com/danmuck/mibctl/internal/testutil/testlog"
	"golang.org/x/sys/unix"
)

func fakeKernel() *kerneltest.Memory {
	mem := kerneltest.NewMemory()
	mem.Store([]int32{1, 1}, []byte("OpenBSD\x00"))
	mem.Store([]int32{1, 7}, value.NewInt32(7030).Raw)
	mem.Store([]int32{1, 10}, []byte("oldhost\x00"))
	return mem
}

func runWith(t *testing.T, mem *kerneltest.Memory, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, &out, &errOut, mem)
	return out.String(), errOut.String(), err
}

func TestRunReadsNames(t *testing.T) {
	testlog.Start(t)
	out, _, err := runWith(t, fakeKernel(), "kern.ostype", "kern.maxfiles")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "kern.ostype=OpenBSD\nkern.maxfiles=7030\n" {
		t.Fatalf("unexpected output %q", out)
	}
	out, _, err = runWith(t, fakeKernel(), "-n", "kern.ostype")
	if err != nil || out != "OpenBSD\n" {
		t.Fatalf("unexpected -n output %q err=%v", out, err)
	}
}

func TestRunWritesNames(t *testing.T) {
	testlog.Start(t)
	mem := fakeKernel()
	out, _, err := runWith(t, mem, "kern.hostname=myhost")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "kern.hostname: oldhost -> myhost\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if b, _ := mem.Load([]int32{1, 10}); string(b) != "myhost" {
		t.Fatalf("kernel holds %q", b)
	}
}

func TestRunReportsErrorsAndContinues(t *testing.T) {
	testlog.Start(t)
	out, errOut, err := runWith(t, fakeKernel(), "kern.nope", "kern.ostype=Linux", "kern.ostype")
	if !errors.Is(err, errReported) {
		t.Fatalf("expected errReported, got %v", err)
	}
	if !strings.Contains(errOut, "unknown name") || !strings.Contains(errOut, "not writable") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
	if out != "kern.ostype=OpenBSD\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunQuietSkipsUnknownNames(t *testing.T) {
	testlog.Start(t)
	out, errOut, err := runWith(t, fakeKernel(), "-q", "kern.nope", "kern.ostype")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if errOut != "" || out != "kern.ostype=OpenBSD\n" {
		t.Fatalf("unexpected output %q stderr %q", out, errOut)
	}
}

func TestRunListAuditSchema(t *testing.T) {
	testlog.Start(t)
	out, _, err := runWith(t, fakeKernel(), "-l")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "kern.hostname\tstring\trw\t1.10\n") {
		t.Fatalf("list output missing kern.hostname")
	}

	out, _, err = runWith(t, fakeKernel(), "--audit")
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if !strings.Contains(out, "machdep.lidaction (int32): writable inherited from machdep") {
		t.Fatalf("audit output missing machdep.lidaction: %q", out)
	}

	out, _, err = runWith(t, fakeKernel(), "--schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if !strings.HasPrefix(out, "release: OpenBSD 7\n") {
		t.Fatalf("unexpected schema output prefix %q", out[:min(len(out), 40)])
	}
}

func TestRunAllSkipsAbsentNames(t *testing.T) {
	testlog.Start(t)
	out, errOut, err := runWith(t, fakeKernel(), "-a")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "kern.ostype=OpenBSD\nkern.maxfiles=7030\nkern.hostname=oldhost\n"
	if out != want || errOut != "" {
		t.Fatalf("unexpected output %q stderr %q", out, errOut)
	}
}

type noSysctl struct{}

func (noSysctl) Sysctl([]int32, []byte, *uintptr, []byte) error {
	return unix.ENOSYS
}

func TestRunAllStopsWithoutKernelSupport(t *testing.T) {
	testlog.Start(t)
	var out, errOut bytes.Buffer
	if err := run([]string{"-a"}, &out, &errOut, noSysctl{}); !errors.Is(err, unix.ENOSYS) {
		t.Fatalf("expected ENOSYS, got %v", err)
	}
}

func TestRunAppliesProfile(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "p.toml")
	body := "name = \"t\"\n[[set]]\nname = \"kern.maxfiles\"\nvalue = 9000\n[[set]]\nname = \"kern.ostype\"\nvalue = \"x\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, _, err := runWith(t, fakeKernel(), "-f", path)
	if err == nil || !strings.Contains(err.Error(), "apply entry 1") {
		t.Fatalf("expected failure at entry 1, got %v", err)
	}
	if out != "kern.maxfiles: 7030 -> 9000\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunTemplateAndMetrics(t *testing.T) {
	testlog.Start(t)
	out, _, err := runWith(t, fakeKernel(), "--template", "profile")
	if err != nil || !strings.Contains(out, "[[set]]") {
		t.Fatalf("unexpected template output %q err=%v", out, err)
	}

	_, errOut, err := runWith(t, fakeKernel(), "--metrics", "kern.ostype")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(errOut, "mibctl_kernel_calls_total") {
		t.Fatalf("metrics not printed: %q", errOut)
	}
}

func TestRunWithoutNamesFails(t *testing.T) {
	testlog.Start(t)
	if _, _, err := runWith(t, fakeKernel()); err == nil {
		t.Fatalf("expected usage error")
	}
	if _, _, err := runWith(t, fakeKernel(), "--bogus"); err == nil {
		t.Fatalf("expected flag error")
	}
	if _, errOut, err := runWith(t, fakeKernel(), "-h"); err != nil || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("unexpected help result err=%v", err)
	}
}

func TestRunAllQuietSkipsFailedReads(t *testing.T) {
	testlog.Start(t)
	mem := fakeKernel()
	mem.Fail([]int32{1, 10}, unix.EPERM)

	_, errOut, err := runWith(t, mem, "-a")
	if err != nil || !strings.Contains(errOut, "read kern.hostname") {
		t.Fatalf("expected the failed read on stderr, got err=%v stderr=%q", err, errOut)
	}

	out, errOut, err := runWith(t, mem, "-a", "-q")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "kern.ostype=OpenBSD\nkern.maxfiles=7030\n" || errOut != "" {
		t.Fatalf("unexpected output %q stderr %q", out, errOut)
	}
}
