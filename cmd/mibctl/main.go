// mibctl reads and writes OpenBSD kernel state by name, in the manner of
// sysctl(8), with every name checked against a built-in schema before the
// kernel is asked.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/mibctl/internal/config"
	"github.com/danmuck/mibctl/internal/kernel"
	logs "github.com/danmuck/mibctl/internal/logging"
	"github.com/danmuck/mibctl/internal/mib"
	"github.com/danmuck/mibctl/internal/observability"
	"github.com/danmuck/mibctl/internal/sysctl"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, kernel.System{}); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "mibctl: %v\n", err)
		}
		os.Exit(1)
	}
}

// errReported means the failures were already written to stderr.
var errReported = errors.New("mibctl: errors reported")

type options struct {
	valuesOnly  bool
	all         bool
	list        bool
	audit       bool
	schema      bool
	profile     string
	configPath  string
	quiet       bool
	metrics     bool
	template    string
	output      string
	force       bool
	help        bool
	flags       *pflag.FlagSet
	expressions []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := pflag.NewFlagSet("mibctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVarP(&o.valuesOnly, "values-only", "n", false, "print values without names")
	fs.BoolVarP(&o.all, "all", "a", false, "read every leaf in the schema")
	fs.BoolVarP(&o.list, "list", "l", false, "list names with shape, access and address")
	fs.BoolVar(&o.audit, "audit", false, "list leaves whose writability is inherited from a subtree")
	fs.BoolVar(&o.schema, "schema", false, "dump the schema as YAML")
	fs.StringVarP(&o.profile, "file", "f", "", "apply the write profile at this path")
	fs.StringVarP(&o.configPath, "config", "c", "", "tool config file")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "suppress errors for unknown names")
	fs.BoolVar(&o.metrics, "metrics", false, "print call counters to stderr on exit")
	fs.StringVar(&o.template, "template", "", "write a config template: profile|tool")
	fs.StringVarP(&o.output, "output", "o", "", "output path for --template")
	fs.BoolVar(&o.force, "force", false, "overwrite an existing --template output")
	fs.BoolVarP(&o.help, "help", "h", false, "show help")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	o.flags = fs
	o.expressions = fs.Args()
	return o, nil
}

func run(args []string, stdout, stderr io.Writer, prim kernel.Primitive) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.help {
		printHelp(stderr, o.flags)
		return nil
	}

	cfg := defaultToolConfig()
	if o.configPath != "" {
		if cfg, err = loadToolConfig(o.configPath); err != nil {
			return err
		}
	}
	logs.ConfigureRuntimeWith(cfg.Log.apply)
	if !o.flags.Changed("quiet") {
		o.quiet = cfg.Quiet
	}
	if !o.flags.Changed("metrics") {
		o.metrics = cfg.ShowMetrics
	}
	if !o.flags.Changed("file") {
		o.profile = cfg.Profile
	}

	c := sysctl.New(prim)
	err = dispatch(c, o, stdout, stderr)
	if o.metrics {
		if merr := writeMetrics(stderr); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

func dispatch(c *sysctl.Client, o options, stdout, stderr io.Writer) error {
	switch {
	case o.template != "":
		return writeTemplate(o, stdout)
	case o.schema:
		return c.Schema().WriteYAML(stdout)
	case o.audit:
		for _, f := range c.Schema().Audit() {
			fmt.Fprintln(stdout, f)
		}
		return nil
	case o.list:
		for _, e := range c.Schema().Entries() {
			fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\n", e.Name, e.Target.Shape, access(e.Target), e.Target.Address)
		}
		return nil
	case o.all:
		return readAll(c, o, stdout, stderr)
	case o.profile != "":
		if err := applyProfile(c, o.profile, stdout); err != nil {
			return err
		}
		if len(o.expressions) == 0 {
			return nil
		}
	}
	if len(o.expressions) == 0 {
		printHelp(stderr, o.flags)
		return errors.New("no names given")
	}
	return evalAll(c, o, stdout, stderr)
}

func evalAll(c *sysctl.Client, o options, stdout, stderr io.Writer) error {
	failed := false
	for _, expr := range o.expressions {
		r, err := c.Exec(expr)
		if err != nil {
			if o.quiet && errors.Is(err, mib.ErrUnknownName) {
				continue
			}
			fmt.Fprintf(stderr, "mibctl: %v\n", err)
			failed = true
			continue
		}
		printResult(stdout, r, o.valuesOnly)
	}
	if failed {
		return errReported
	}
	return nil
}

func printResult(w io.Writer, r sysctl.Result, valuesOnly bool) {
	switch {
	case r.Wrote && valuesOnly:
		fmt.Fprintln(w, r.New)
	case r.Wrote:
		fmt.Fprintf(w, "%s: %s -> %s\n", r.Target.Name, r.Old, r.New)
	case valuesOnly:
		fmt.Fprintln(w, r.Old)
	default:
		fmt.Fprintf(w, "%s=%s\n", r.Target.Name, r.Old)
	}
}

// readAll prints every readable leaf. Markers are skipped, and names the
// running kernel does not provide are skipped silently.
func readAll(c *sysctl.Client, o options, stdout, stderr io.Writer) error {
	return c.Schema().Walk(func(e mib.Entry) error {
		if e.Target.Shape == mib.ShapeSubtreeMarker {
			return nil
		}
		v, err := c.Read(e.Target)
		if err != nil {
			var kerr *kernel.Error
			if errors.As(err, &kerr) {
				switch {
				case kerr.Class == kernel.ClassUnsupported:
					return err
				case kerr.Class == kernel.ClassNotFound:
					return nil
				case o.quiet:
					logs.Warnf("mibctl.all skip name=%s class=%s", e.Name, kerr.Class)
					return nil
				}
			}
			fmt.Fprintf(stderr, "mibctl: %v\n", err)
			return nil
		}
		printResult(stdout, sysctl.Result{Target: e.Target, Old: v}, o.valuesOnly)
		return nil
	})
}

func applyProfile(c *sysctl.Client, path string, stdout io.Writer) error {
	p, err := config.LoadProfile(path)
	if err != nil {
		return err
	}
	writes, err := p.Writes()
	if err != nil {
		return err
	}
	logs.Infof("mibctl.profile name=%s entries=%d", p.Name, len(writes))
	results, err := c.Apply(writes)
	for _, r := range results {
		printResult(stdout, r, false)
	}
	if err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return nil
}

func writeTemplate(o options, stdout io.Writer) error {
	if o.output == "" {
		t, err := config.Template(o.template)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, t)
		return err
	}
	if err := config.WriteTemplate(o.output, o.template, o.force); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s template to %s\n", o.template, o.output)
	return nil
}

func writeMetrics(w io.Writer) error {
	families, err := observability.Gatherer().Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

func access(t mib.Target) string {
	if t.Mutable {
		return "rw"
	}
	return "ro"
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `mibctl reads and writes kernel state by name.

Usage:
  mibctl [flags] name[=value] ...
  mibctl -a | -l | --audit | --schema
  mibctl -f profile.toml

Flags:
%s`, strings.TrimRight(fs.FlagUsages(), "\n")+"\n")
}
